package metrics

import "go.uber.org/fx"

// Module provides Prometheus collectors.
var Module = fx.Provide(NewShopMetrics)
