package config

import "go.uber.org/fx"

// Module provides the process configuration parsed from flags and environment.
var Module = fx.Provide(Load)
