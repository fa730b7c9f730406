// Package main provides the CLI entrypoint for nxem-convert.
//
// nxem-convert fills an NXem template from arbitrary user input:
//   - Deployment-specific NOMAD Oasis configuration (*.oasis.specific.yaml)
//   - ELN exports (eln_data.yaml)
//   - Reference frame convention documents (*conventions.yaml)
//
// The filled template is printed path by path; NXEM_DEBUG additionally
// dumps the raw template structure.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/davecgh/go-spew/spew"

	"github.com/FAIRmat-NFDI/nxem/internal/reader"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

type config struct {
	EntryID int  `env:"NXEM_ENTRY_ID" envDefault:"1"`
	Debug   bool `env:"NXEM_DEBUG" envDefault:"false"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "nxem-convert: %v\n", err)
		os.Exit(1)
	}
}

func run(filePaths []string) error {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	r := reader.New(cfg.EntryID)
	tpl := template.New()

	if err := r.Read(tpl, filePaths, nil); err != nil {
		return err
	}

	for _, d := range r.Diagnostics.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d.String())
	}

	if err := r.Diagnostics.Error(); err != nil {
		return err
	}

	for _, path := range tpl.Paths() {
		v, _ := tpl.Get(path)
		fmt.Printf("%s: %v\n", path, v)
	}

	if cfg.Debug {
		spew.Fdump(os.Stderr, tpl.Entries())
	}

	return nil
}
