package app

import (
	"context"
	"fmt"

	"github.com/vk/cligram/internal/print"
)

// Run renders the registered grammars according to the configuration:
// every tree, or the one cfg.Tree names; grammar syntax, or the structural
// dump when cfg.Dump is set. ctx is accepted for interface symmetry with
// callers that attach loggers or deadlines; rendering itself never blocks.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	a.logger.Debug("App.Run method started.")

	if cfg.Tree != "" {
		tree := a.registry.Lookup(cfg.Tree)
		if tree == nil {
			return fmt.Errorf("no grammar tree registered under %q", cfg.Tree)
		}
		if cfg.Dump {
			print.DumpTree(tree)
			return nil
		}
		if _, err := fmt.Fprintf(a.outW, "%s\n", cfg.Tree); err != nil {
			return err
		}
		return print.Tree(a.outW, tree, cfg.Brief)
	}

	if cfg.Dump {
		for e := a.registry.Each(nil); e != nil; e = a.registry.Each(e) {
			print.DumpTree(e.Tree())
		}
		return nil
	}
	return print.Trees(a.outW, a.registry, cfg.Brief)
}
