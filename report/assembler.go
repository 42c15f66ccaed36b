package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/aquinode91-creator/procesador-pdf/group"
	"github.com/aquinode91-creator/procesador-pdf/layout"
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// OrderReport is the renderable artifact for one order: its records, the
// grouped and aggregated views, the laid-out pages, and the source pages
// forwarded unchanged.
type OrderReport struct {
	Order  *model.Order
	Groups []*model.ClientGroup
	Totals *model.OrderTotals
	Pages  []layout.Page
	Source []model.SourcePage
}

// Artifact is the result of one assembly run over a document's orders.
type Artifact struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Reports     []*OrderReport
}

// Assembler drives grouping, aggregation and layout for each order and
// stamps the run metadata.
type Assembler struct {
	engine *layout.Engine
}

// NewAssembler creates an assembler that lays out tables with the given
// measurement function and the default page geometry.
func NewAssembler(measure layout.MeasureFunc) *Assembler {
	return &Assembler{engine: layout.NewEngine(measure)}
}

// NewAssemblerWithConfig creates an assembler with custom page geometry.
func NewAssemblerWithConfig(measure layout.MeasureFunc, cfg layout.Config) *Assembler {
	return &Assembler{engine: layout.NewEngineWithConfig(measure, cfg)}
}

// Assemble builds one report per order. Orders are processed independently;
// grouping and aggregate state is scoped per order.
func (a *Assembler) Assemble(orders []*model.Order) *Artifact {
	artifact := &Artifact{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
	}
	for _, order := range orders {
		groups := group.ByClient(order)
		totals := group.Aggregate(order)
		table := BuildTable(order, groups, totals)
		artifact.Reports = append(artifact.Reports, &OrderReport{
			Order:  order,
			Groups: groups,
			Totals: totals,
			Pages:  a.engine.Layout(table),
			Source: order.Pages,
		})
	}
	return artifact
}
