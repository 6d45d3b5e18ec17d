// Package netif contributes the interface-configuration grammar compiled
// into the cligram binary.
package netif

import (
	"github.com/vk/cligram/internal/cvar"
	"github.com/vk/cligram/internal/cvec"
	"github.com/vk/cligram/internal/registry"
	"github.com/vk/cligram/internal/syntax"
)

// TreeName is the name the grammar registers under.
const TreeName = "netif"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register builds the grammar tree and adds it to the registry.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.Add(TreeName, buildTree())
	return err
}

// buildTree assembles:
//
//	interface <name:string length[1:15] regexp:"..."> {
//	    address <addr:ipv4addr>, cli_set_address(...);
//	    mtu <mtu:uint16 range[576:9216]>, cli_set_mtu();
//	    disable, cli_disable();
//	}
func buildTree() *syntax.Tree {
	addr := syntax.NewVariable("addr", cvar.IPv4Addr)
	addr.AddHelp("IPv4 address to assign")
	addr.Terminal = true
	addr.AddCallback("cli_set_address", callbackArgs("addr"))

	address := syntax.NewCommand("address")
	address.AddHelp("Set the interface address")
	address.Children = syntax.NewTree("", addr)

	mtuVal := syntax.NewVariable("mtu", cvar.UInt16)
	mtuVal.AddHelp("Maximum transmission unit in bytes")
	mtuVal.AddRange(intBound(cvar.UInt16, 576), intBound(cvar.UInt16, 9216))
	mtuVal.Terminal = true
	mtuVal.AddCallback("cli_set_mtu", callbackArgs("mtu"))

	mtu := syntax.NewCommand("mtu")
	mtu.AddHelp("Set the interface MTU")
	mtu.Children = syntax.NewTree("", mtuVal)

	disable := syntax.NewCommand("disable")
	disable.AddHelp("Administratively disable the interface")
	disable.Flags = syntax.FlagHideDatabase
	disable.Terminal = true
	disable.AddCallback("cli_disable", nil)

	name := syntax.NewVariable("name", cvar.String)
	name.AddHelp("Interface name")
	name.AddRange(intBound(cvar.Int32, 1), intBound(cvar.Int32, 15))
	name.AddRegex("^[a-z][a-z0-9]*$")
	name.Children = syntax.NewTree("", address, mtu, disable)

	iface := syntax.NewCommand("interface")
	iface.AddHelp("Configure a network interface")
	iface.Children = syntax.NewTree("", name)

	return syntax.NewTree(TreeName, iface)
}

// intBound returns a constraint bound record of type t holding i.
func intBound(t cvar.Type, i int64) *cvar.Var {
	cv := &cvar.Var{}
	cv.SetType(t)
	cv.SetInt64(i)
	return cv
}

// callbackArgs builds the argument vector naming the bound variables a
// callback receives.
func callbackArgs(names ...string) *cvec.Vec {
	args := cvec.New(0)
	for _, name := range names {
		cv := args.Add(cvar.String)
		cv.SetName(name)
		cv.SetString(name)
	}
	return args
}
