// Package ops contributes the operational command grammar compiled into
// the cligram binary: show/debug/quit plus a reference to the netif tree.
package ops

import (
	"github.com/vk/cligram/internal/cvar"
	"github.com/vk/cligram/internal/cvec"
	"github.com/vk/cligram/internal/registry"
	"github.com/vk/cligram/internal/syntax"
)

// TreeName is the name the grammar registers under.
const TreeName = "ops"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register builds the grammar tree and adds it to the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Add(TreeName, buildTree())
	return err
}

func buildTree() *syntax.Tree {
	version := syntax.NewCommand("version")
	version.AddHelp("Show software version")
	version.Terminal = true
	version.AddCallback("cli_show_version", nil)

	ifname := syntax.NewVariable("ifname", cvar.String)
	ifname.Show = "interface"
	ifname.AddHelp("Interface to display")
	ifname.ExpandFn = "expand_interfaces"
	ifname.ExpandArgs = expandArgs()
	ifname.Terminal = true
	ifname.AddCallback("cli_show_interface", nil)

	interfaces := syntax.NewCommand("interfaces")
	interfaces.AddHelp("Show interface state")
	interfaces.Terminal = true
	interfaces.Children = syntax.NewTree("", ifname)

	// show's alternatives form a set: version and interfaces may both be
	// requested in one command.
	show := syntax.NewCommand("show")
	show.AddHelp("Display running state")
	show.Sets = true
	show.Children = syntax.NewTree("", version, interfaces)

	level := syntax.NewVariable("level", cvar.Int32)
	level.AddHelp("Debug level")
	level.AddRange(nil, intBound(cvar.Int32, 7))
	level.TranslateFn = "level_from_name"
	level.Terminal = true
	level.AddCallback("cli_set_debug", nil)

	debug := syntax.NewCommand("debug")
	debug.AddHelp("Set the debug level")
	debug.Children = syntax.NewTree("", level)

	speed := syntax.NewVariable("speed", cvar.Int32)
	speed.Choice = "10|100|1000"
	speed.AddHelp("Link speed in Mbit/s")
	speed.Terminal = true

	quit := syntax.NewCommand("quit")
	quit.Flags = syntax.FlagHide
	quit.Terminal = true
	quit.AddCallback("cli_quit", nil)
	quit.Children = syntax.NewTree("", syntax.NewEmpty())

	netifRef := syntax.NewReference("netif")
	netifRef.AddHelp("Interface configuration commands")

	return syntax.NewTree(TreeName, show, debug, speed, quit, netifRef)
}

// intBound returns a constraint bound record of type t holding i.
func intBound(t cvar.Type, i int64) *cvar.Var {
	cv := &cvar.Var{}
	cv.SetType(t)
	cv.SetInt64(i)
	return cv
}

// expandArgs is the argument vector handed to the interface expansion
// function at completion time.
func expandArgs() *cvec.Vec {
	args := cvec.New(0)
	cv := args.Add(cvar.String)
	cv.SetName("db")
	cv.SetString("running")
	return args
}
