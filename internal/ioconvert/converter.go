// Package ioconvert implements taxdump.Converter. It glues together
// fetching of the dump, ingestion of its files into the record store,
// export of the records and packing of the output directory.
package ioconvert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/taxdump/internal/ioarchive"
	"github.com/gnames/taxdump/internal/ioexport"
	"github.com/gnames/taxdump/internal/iofs"
	"github.com/gnames/taxdump/internal/ioingest"
	"github.com/gnames/taxdump/internal/iometrics"
	"github.com/gnames/taxdump/internal/iostore"
	"github.com/gnames/taxdump/pkg/config"
	"github.com/gnames/taxdump/pkg/ncbi"
	"github.com/gnames/taxdump/pkg/taxdump"
)

type converter struct {
	cfg     *config.Config
	metrics *iometrics.Metrics
}

// New creates a Converter for the given configuration.
func New(cfg *config.Config) taxdump.Converter {
	return &converter{cfg: cfg, metrics: iometrics.New()}
}

// Convert runs the whole conversion. The type catalog is reported even if
// the conversion fails, so the result is returned together with an error.
func (c *converter) Convert(ctx context.Context) (*taxdump.Result, error) {
	start := time.Now()
	res := &taxdump.Result{
		Rows:    make(map[string]int),
		Catalog: ncbi.NewCatalog(),
	}
	slog.Info("Starting conversion",
		"source", c.cfg.Dump.Source, "output", c.cfg.OutputDir)

	err := c.convert(ctx, res)

	res.Duration = time.Since(start)
	c.metrics.Duration.Set(res.Duration.Seconds())
	reportCatalog(res.Catalog)

	if c.cfg.MetricsFile != "" {
		if merr := c.metrics.WriteFile(c.cfg.MetricsFile); merr != nil {
			slog.Error("Cannot write metrics", "error", merr)
			if err == nil {
				err = merr
			}
		}
	}

	if err != nil {
		slog.Error("Conversion failed", "error", err)
		return res, err
	}

	slog.Info("Conversion complete",
		"records", res.Records,
		"archive", res.Archive,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info(`Conversion complete
Records: <em>%s</em>, archive: <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(res.Records)),
		res.Archive,
		gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

func (c *converter) convert(ctx context.Context, res *taxdump.Result) error {
	classes, err := ncbi.DefaultClasses().WithOverrides(c.cfg.Classes)
	if err != nil {
		return ClassesError(err)
	}

	out := c.cfg.OutputDir
	if err = iofs.PrepareOutputDir(out); err != nil {
		return err
	}

	cacheDir := config.DumpCacheDir(c.cfg.HomeDir)
	path, err := ioarchive.Fetch(ctx, c.cfg.Dump.Source, cacheDir, c.cfg.ShowProgress())
	if err != nil {
		return err
	}

	store, err := iostore.Open(
		filepath.Join(out, c.cfg.Dump.StoreFile),
		c.cfg.Store.CacheSize,
	)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			slog.Error("Cannot close record store", "error", cerr)
		}
	}()

	in := ioingest.New(store, res.Catalog,
		ioingest.OptClasses(classes),
		ioingest.OptMetrics(c.metrics),
		ioingest.OptProgress(c.cfg.ShowProgress()),
	)
	if err = c.ingest(ctx, in, path, res); err != nil {
		return err
	}

	stats, err := ioexport.Export(store, out, c.metrics)
	if err != nil {
		return err
	}
	res.Records = stats.Records
	res.Exported = stats.Rows

	// the store file must be complete before packing skips it
	if err = store.Close(); err != nil {
		return err
	}

	archive := filepath.Join(out, c.cfg.Dump.ArchiveName)
	gn.Info("Packing output archive <em>%s</em>", archive)
	err = ioarchive.Pack(out, archive, c.cfg.Dump.StoreFile, c.cfg.Dump.ArchiveName)
	if err != nil {
		return err
	}
	res.Archive = archive
	return nil
}

// ingest feeds archive members to the ingester in archive order.
func (c *converter) ingest(
	ctx context.Context,
	in *ioingest.Ingester,
	path string,
	res *taxdump.Result,
) error {
	a, err := ioarchive.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, m := range a.Members() {
		select {
		case <-ctx.Done():
			return ioingest.CancelledError(ctx.Err())
		default:
		}

		if !in.Accepts(m.Name) {
			if strings.EqualFold(m.Name, ncbi.HostFile) {
				slog.Info("Host file is not merged", "file", m.Name)
			} else {
				slog.Info("Skipping unknown archive member", "file", m.Name)
			}
			continue
		}

		gn.Info("Processing <em>%s</em> (%s)", m.Name,
			humanize.Bytes(uint64(m.Size)))
		n, err := c.ingestMember(ctx, in, m)
		res.Rows[strings.ToLower(m.Name)] += n
		if err != nil {
			return err
		}
		gn.Message("<em>%s</em> rows from %s",
			humanize.Comma(int64(n)), m.Name)
	}
	return nil
}

func (c *converter) ingestMember(
	ctx context.Context,
	in *ioingest.Ingester,
	m ioarchive.Member,
) (int, error) {
	rc, err := m.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return in.Ingest(ctx, m.Name, rc, m.Size)
}

// reportCatalog shows every name classification label with its last
// example row.
func reportCatalog(cat *ncbi.Catalog) {
	if cat.Len() == 0 {
		return
	}
	labels := cat.Labels()
	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		ex, _ := cat.Example(label)
		slog.Info("Name class", "class", label, "example", ex)
		lines = append(lines, fmt.Sprintf("  %s: %s", label, ex))
	}
	gn.Info("Name classes found in %s:\n%s",
		ncbi.NamesFile, strings.Join(lines, "\n"))
}
