// Command gen regenerates the typed gorm query layer for the postgres order store.
package main

import (
	"flag"

	"gorm.io/gen"

	"storefront/internal/infra/persistence/model"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated queries")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(
		model.OrderModel{},
		model.OrderEventModel{},
		model.RoleModel{},
		model.UserModel{},
	)

	g.Execute()
}
