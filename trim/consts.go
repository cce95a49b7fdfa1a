package trim

// SpecialDetect tag vocabulary.
const (
	tagChrome      = "DET_CHROME"
	tagMozilla     = "DET_MOZILLA"
	tagThunderbird = "DET_THUNDERBIRD"
	tagOpera       = "DET_OPERA"
)

// SpecialDetect filesystem targets for the single-path tags.
const (
	mozillaTarget     = `%AppData%\Mozilla\Firefox`
	thunderbirdTarget = `%AppData%\Thunderbird`
	operaTarget       = `%AppData%\Opera Software`
)

// chromeTargets is the authoritative DET_CHROME target list: install
// paths and registry keys of the Chromium family.
var chromeTargets = []string{
	`%AppData%\ChromePlus\chrome.exe`,
	`%LocalAppData%\Chromium\Application\chrome.exe`,
	`%LocalAppData%\Chromium\chrome.exe`,
	`%LocalAppData%\Flock\Application\flock.exe`,
	`%LocalAppData%\Google\Chrome SxS\Application\chrome.exe`,
	`%LocalAppData%\Google\Chrome\Application\chrome.exe`,
	`%LocalAppData%\RockMelt\Application\rockmelt.exe`,
	`%LocalAppData%\SRWare Iron\iron.exe`,
	`%ProgramFiles%\Chromium\Application\chrome.exe`,
	`%ProgramFiles%\SRWare Iron\iron.exe`,
	`%ProgramFiles%\Chromium\chrome.exe`,
	`%ProgramFiles%\Flock\Application\flock.exe`,
	`%ProgramFiles%\Google\Chrome SxS\Application\chrome.exe`,
	`%ProgramFiles%\Google\Chrome\Application\chrome.exe`,
	`%ProgramFiles%\RockMelt\Application\rockmelt.exe`,
	`HKCU\Software\Chromium`,
	`HKCU\Software\SuperBird`,
	`HKCU\Software\Torch`,
	`HKCU\Software\Vivaldi`,
}

// vsRule rewrites a legacy system-wide prefix onto its user-scoped
// VirtualStore mirror.
type vsRule struct {
	src, dst string
}

// vsFileRules applies to FileKey and ExcludeKey values.
var vsFileRules = []vsRule{
	{`%ProgramFiles%`, `%LocalAppData%\VirtualStore\Program Files*`},
	{`%CommonAppData%`, `%LocalAppData%\VirtualStore\ProgramData`},
	{`%CommonProgramFiles%`, `%LocalAppData%\VirtualStore\Program Files*\Common Files`},
	{`HKLM\Software`, `HKCU\Software\Classes\VirtualStore\MACHINE\SOFTWARE`},
}

// vsRegRules applies to RegKey values: only the HKLM rewrite.
var vsRegRules = vsFileRules[3:]
