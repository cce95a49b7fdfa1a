package winapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lwd-temp/Winapp2/internal/fetch"
	"github.com/lwd-temp/Winapp2/internal/initext"
	"github.com/lwd-temp/Winapp2/pkg/types"
	"github.com/lwd-temp/Winapp2/trim"
)

// DefaultDownloadURL is the canonical published winapp2.ini.
const DefaultDownloadURL = fetch.DefaultURL

// Trim runs a complete trim: read (or download) the ruleset, evaluate
// it against the host, and write the reduced ruleset to
// cfg.OutputPath. An empty input declines with ErrEmptyRuleset; an
// unreachable remote in download mode declines with ErrOffline.
func Trim(ctx context.Context, cfg TrimConfig, opts ...Option) (Stats, error) {
	rt := newRuntime(opts)

	raw, err := readInput(ctx, cfg, rt)
	if err != nil {
		return Stats{}, err
	}
	rs, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Stats{}, err
	}

	stats, err := trimRuleset(rs, cfg, rt)
	if err != nil {
		return Stats{}, err
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("writing trimmed ruleset: %w", err)
	}
	defer out.Close()
	if err := initext.Emit(out, rs); err != nil {
		return Stats{}, fmt.Errorf("writing trimmed ruleset: %w", err)
	}
	return stats, nil
}

// TrimRuleset trims an already-parsed ruleset in place. Callers own
// serialization.
func TrimRuleset(rs *Ruleset, cfg TrimConfig, opts ...Option) (Stats, error) {
	return trimRuleset(rs, cfg, newRuntime(opts))
}

func trimRuleset(rs *Ruleset, cfg TrimConfig, rt *runtime) (Stats, error) {
	topts := []trim.Option{trim.WithLogger(rt.log)}
	if cfg.UseIncludes {
		set, err := loadNameSet(cfg.IncludesPath, rt)
		if err != nil {
			return Stats{}, fmt.Errorf("loading includes: %w", err)
		}
		topts = append(topts, trim.WithIncludes(set))
	}
	if cfg.UseExcludes {
		set, err := loadNameSet(cfg.ExcludesPath, rt)
		if err != nil {
			return Stats{}, fmt.Errorf("loading excludes: %w", err)
		}
		topts = append(topts, trim.WithExcludes(set))
	}
	return trim.New(rt.host, topts...).Run(rs), nil
}

// Parse decodes and parses a ruleset. The reader may be UTF-8 (with or
// without BOM), UTF-16, or Windows-1252.
func Parse(r io.Reader) (*Ruleset, error) {
	data, err := initext.Decode(r)
	if err != nil {
		return nil, err
	}
	return initext.Parse(bytes.NewReader(data))
}

// ParseFile reads and parses a ruleset file.
func ParseFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ruleset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Marshal serializes a ruleset into the winapp2.ini dialect.
func Marshal(rs *Ruleset) ([]byte, error) {
	var buf bytes.Buffer
	if err := initext.Emit(&buf, rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readInput(ctx context.Context, cfg TrimConfig, rt *runtime) ([]byte, error) {
	if cfg.Download {
		url := cfg.DownloadURL
		if url == "" {
			url = DefaultDownloadURL
		}
		if !fetch.Online(ctx, rt.client, url) {
			return nil, fmt.Errorf("%w: %s", types.ErrOffline, url)
		}
		rt.log.Info("downloading ruleset", "url", url)
		return fetch.Ruleset(ctx, rt.client, url)
	}
	buf, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset: %w", err)
	}
	return buf, nil
}

// loadNameSet reads an includes/excludes file into a folded name set. A
// missing file is an empty set with a warning, not an error: the
// override simply has nothing to say.
func loadNameSet(path string, rt *runtime) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			rt.log.Warn("override file missing, treating as empty", "path", path)
			return map[string]bool{}, nil
		}
		return nil, err
	}
	defer f.Close()

	data, err := initext.Decode(f)
	if err != nil {
		return nil, err
	}
	return initext.ParseNameSet(bytes.NewReader(data))
}
