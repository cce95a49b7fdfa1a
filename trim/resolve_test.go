package trim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

func TestExpandPseudoVariablesModern(t *testing.T) {
	r := testResolver(testHost())

	tests := []struct {
		value string
		want  string
	}{
		{`%Documents%\x`, `C:\Users\test\Documents\x`},
		{`%CommonAppData%\App`, `C:\ProgramData\App`},
		{`%LocalLowAppData%\App`, `C:\Users\test\AppData\LocalLow\App`},
		{`%Pictures%\cache`, `C:\Users\test\Pictures\cache`},
		{`%Music%\cache`, `C:\Users\test\Music\cache`},
		{`%Video%\cache`, `C:\Users\test\Videos\cache`},
		{`%Temp%\x.log`, `C:\Users\test\AppData\Local\Temp\x.log`},
		{`no variables at all`, `no variables at all`},
	}
	for _, tt := range tests {
		got, _, err := r.expand(tt.value, false)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestExpandPseudoVariablesXP(t *testing.T) {
	f := testHost()
	f.Version = 5.1
	r := testResolver(f)

	tests := []struct {
		value string
		want  string
	}{
		{`%Documents%\x`, `C:\Users\test\My Documents\x`},
		{`%CommonAppData%\App`, `C:\ProgramData\Application Data\App`},
		{`%Pictures%\c`, `C:\Users\test\My Documents\My Pictures\c`},
		{`%Music%\c`, `C:\Users\test\My Documents\My Music\c`},
		{`%Video%\c`, `C:\Users\test\My Documents\My Videos\c`},
	}
	for _, tt := range tests {
		got, _, err := r.expand(tt.value, false)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestExpandProgramFilesSensitivity(t *testing.T) {
	r := testResolver(testHost())

	got, sensitive, err := r.expand(`%ProgramFiles%\App`, false)
	require.NoError(t, err)
	assert.True(t, sensitive)
	assert.Equal(t, `C:\Program Files\App`, got)

	got, sensitive, err = r.expand(`%ProgramFiles%\App`, true)
	require.NoError(t, err)
	assert.True(t, sensitive)
	assert.Equal(t, `C:\Program Files (x86)\App`, got)

	_, sensitive, err = r.expand(`%AppData%\App`, false)
	require.NoError(t, err)
	assert.False(t, sensitive)
}

func TestExpandMalformedVariable(t *testing.T) {
	r := testResolver(testHost())

	for _, value := range []string{`%NotClosed\x`, `%`, `half%done`} {
		_, _, err := r.expand(value, false)
		assert.ErrorIs(t, err, types.ErrMalformedVariable, value)
	}
}

func TestExpandDoesNotRecurse(t *testing.T) {
	f := testHost()
	f.SetVar("Weird", `C:\has%percent`)
	r := testResolver(f)

	got, _, err := r.expand(`%Weird%\x`, false)
	require.NoError(t, err)
	assert.Equal(t, `C:\has%percent\x`, got)
}

func TestPathExistsPlain(t *testing.T) {
	f := testHost()
	f.AddFile(`C:\Users\test\AppData\Roaming\App\app.dat`)
	r := testResolver(f)

	ok, err := r.pathExists(`%AppData%\App\app.dat`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.pathExists(`%AppData%\App\missing.dat`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPathExistsProgramFilesFallThrough(t *testing.T) {
	f := testHost()
	f.AddDir(`C:\Program Files (x86)\OldApp`)
	r := testResolver(f)

	ok, err := r.pathExists(`%ProgramFiles%\OldApp`)
	require.NoError(t, err)
	assert.True(t, ok, "x86 retry should hit")

	ok, err = r.pathExists(`%ProgramFiles%\DoesNotExist\x.exe`)
	require.NoError(t, err)
	assert.False(t, ok, "miss in both Program Files trees")
}

func TestWildcardMidSegment(t *testing.T) {
	f := testHost()
	f.AddDir(`C:\Users\test\AppData\Local\Mozilla\Firefox\Profiles\ab12cd.default\cache2`)
	r := testResolver(f)

	ok, err := r.pathExists(`%LocalAppData%\Mozilla\Firefox\Profiles\*\cache2`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.pathExists(`%LocalAppData%\Mozilla\Firefox\Profiles\*\thumbnails`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWildcardFinalSegmentMatchesFiles(t *testing.T) {
	f := testHost()
	f.AddFile(`C:\Users\test\AppData\Local\App\dump-2024.log`)
	r := testResolver(f)

	ok, err := r.pathExists(`%LocalAppData%\App\dump-*.log`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.pathExists(`%LocalAppData%\App\trace-*.log`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWildcardPartialSegment(t *testing.T) {
	f := testHost()
	f.AddDir(`C:\Users\test\AppData\Local\VirtualStore\Program Files (x86)\App`)
	r := testResolver(f)

	ok, err := r.pathExists(`%LocalAppData%\VirtualStore\Program Files*\App`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWildcardDeniedPrefixIsHit(t *testing.T) {
	f := testHost()
	f.AddDir(`C:\Users\test\AppData\Local\Locked`)
	f.DenyPath(`C:\Users\test\AppData\Local\Locked`)
	r := testResolver(f)

	ok, err := r.pathExists(`%LocalAppData%\Locked\*\cache`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWildcardEmptyWorkingSetIsMiss(t *testing.T) {
	r := testResolver(testHost())

	ok, err := r.pathExists(`C:\NoSuchRoot\*\cache`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalLow(t *testing.T) {
	assert.Equal(t, `C:\Users\test\AppData\LocalLow`, localLow(`C:\Users\test\AppData\Local`))
	assert.Equal(t, `C:\odd\path`, localLow(`C:\odd\path`))
}
