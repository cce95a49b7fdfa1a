package trim

import (
	"log/slog"

	"github.com/lwd-temp/Winapp2/trim/hostprobe"
)

// testHost returns a Fake resembling a stock 64-bit Windows 10 user
// session.
func testHost() *hostprobe.Fake {
	f := hostprobe.NewFake()
	f.SetVar("UserProfile", `C:\Users\test`)
	f.SetVar("AppData", `C:\Users\test\AppData\Roaming`)
	f.SetVar("LocalAppData", `C:\Users\test\AppData\Local`)
	f.SetVar("AllUsersProfile", `C:\ProgramData`)
	f.SetVar("ProgramFiles", `C:\Program Files`)
	f.SetVar("ProgramFiles(x86)", `C:\Program Files (x86)`)
	f.SetVar("CommonProgramFiles", `C:\Program Files\Common Files`)
	f.SetVar("Temp", `C:\Users\test\AppData\Local\Temp`)
	return f
}

func testTrimmer(f *hostprobe.Fake, opts ...Option) *Trimmer {
	return New(f, append([]Option{WithLogger(slog.Default())}, opts...)...)
}

func testResolver(f *hostprobe.Fake) *resolver {
	return &resolver{host: f, log: slog.Default()}
}
