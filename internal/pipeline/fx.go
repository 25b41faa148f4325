package pipeline

import (
	"github.com/filipgodzsak/abies-report/internal/report/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("pipeline",
	fx.Provide(repository.Provide),
	fx.Provide(New),
)
