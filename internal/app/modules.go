package app

import (
	"github.com/vk/cligram/internal/registry"
	"github.com/vk/cligram/modules/netif"
	"github.com/vk/cligram/modules/ops"
)

// coreModules is the definitive list of grammar modules compiled into the
// cligram binary.
var coreModules = []registry.Module{
	&netif.Module{},
	&ops.Module{},
}
