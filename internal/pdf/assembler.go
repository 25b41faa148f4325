package pdf

import (
	"fmt"
	"os"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/fx"

	"github.com/filipgodzsak/abies-report/internal/chart"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"github.com/filipgodzsak/abies-report/internal/report/format"
)

// Module provides the PDF assembler.
var Module = fx.Provide(NewAssembler)

// ReportData carries everything the management report renders. The monthly
// series must already be sorted ascending and validated.
type ReportData struct {
	GeneratedAt time.Time
	Period      domain.Period
	LogoPath    string

	Monthly  []domain.MonthlyKPI
	Yearly   []domain.YearlyKPI
	Portals  []domain.PortalKPI
	Summary  domain.Summary
	Insights domain.Insights

	// Charts maps metric name to a PNG path written by the chart renderer.
	Charts map[string]string
}

type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Build writes the multi-page management report to path. Page order is fixed:
// branded header and executive summary, yearly KPI, portal KPI, trend charts,
// insights. Every referenced chart must exist on disk before assembly starts.
func (a *Assembler) Build(data ReportData, path string) error {
	for _, metric := range []string{chart.MetricRevenue, chart.MetricOccupancy, chart.MetricRevPAR} {
		chartPath, ok := data.Charts[metric]
		if !ok {
			return fmt.Errorf("%w: %s chart was never rendered", domain.ErrMissingChart, metric)
		}
		if _, err := os.Stat(chartPath); err != nil {
			return fmt.Errorf("%w: %s chart at %s: %v", domain.ErrMissingChart, metric, chartPath, err)
		}
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Strana {current} z {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	a.addHeader(m, data)
	a.addSummary(m, data.Summary)
	a.addYearlyTable(m, data.Yearly)
	a.addPortalTable(m, data.Portals)
	a.addCharts(m, data.Charts)
	a.addInsights(m, data.Summary, data.Insights)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAssembly, err)
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrAssembly, path, err)
	}
	return nil
}

func (a *Assembler) addHeader(m core.Maroto, data ReportData) {
	if _, err := os.Stat(data.LogoPath); err == nil {
		m.AddRow(24,
			image.NewFromFileCol(2, data.LogoPath, props.Rect{
				Center:  false,
				Percent: 90,
			}),
			col.New(10).Add(
				text.New("ABIES APARTMÁN – Manažérsky report", props.Text{
					Size:  18,
					Style: fontstyle.Bold,
				}),
			),
		)
	} else {
		m.AddRow(24,
			text.NewCol(12, "ABIES APARTMÁN – Manažérsky report", props.Text{
				Size:  18,
				Style: fontstyle.Bold,
			}),
		)
	}

	m.AddRow(14,
		col.New(12).Add(
			text.New("Generované: "+data.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Top: 0, Size: 10}),
			text.New(fmt.Sprintf("Obdobie: %s až %s",
				format.Date(data.Period.Start),
				format.Date(data.Period.LastDay())), props.Text{Top: 5, Size: 10}),
		),
	)
}

func (a *Assembler) addSummary(m core.Maroto, s domain.Summary) {
	m.AddRow(12,
		text.NewCol(12, "Executive Summary", props.Text{Size: 13, Style: fontstyle.Bold, Top: 2}),
	)

	cells := [][4]string{
		{"Tržby (gross)", format.Money(s.RevenueGross), "Tržby (net)", format.Money(s.RevenueNet)},
		{"Provízie", format.Money(s.Commission), "ADR (vážené)", format.Money(s.ADR)},
		{"Obsadenosť (avg)", format.Pct(100 * s.AvgOccupancy), "RevPAR (avg)", format.Money(s.AvgRevPAR)},
		{"Počet nocí", format.Count(s.NightsSold), "Rezervácie", format.Count(s.Bookings)},
		{"Najvýnosnejší portál", s.TopPortal, "", ""},
	}
	for _, c := range cells {
		m.AddRow(8,
			text.NewCol(3, c[0], props.Text{Size: 10}),
			text.NewCol(3, c[1], props.Text{Size: 10, Align: align.Right}),
			text.NewCol(3, c[2], props.Text{Size: 10}),
			text.NewCol(3, c[3], props.Text{Size: 10, Align: align.Right}),
		)
	}

	m.AddRow(8,
		text.NewCol(12, "Pozn.: Occupancy/RevPAR počítané na báze dostupných nocí.", props.Text{Size: 8, Top: 2}),
	)
}

func (a *Assembler) addYearlyTable(m core.Maroto, yearly []domain.YearlyKPI) {
	m.AddRow(12,
		text.NewCol(12, "Ročné KPI", props.Text{Size: 13, Style: fontstyle.Bold, Top: 3}),
	)
	m.AddRow(8,
		text.NewCol(1, "Rok", headerText()),
		text.NewCol(2, "Tržby gross", headerText()),
		text.NewCol(2, "Tržby net", headerText()),
		text.NewCol(2, "Provízie", headerText()),
		text.NewCol(2, "ADR", headerText()),
		text.NewCol(1, "Noci", headerText()),
		text.NewCol(2, "Rezervácie", headerText()),
	)
	for _, y := range yearly {
		m.AddRow(7,
			text.NewCol(1, format.Count(y.Year), cellText()),
			text.NewCol(2, format.Money(y.RevenueGross), cellTextRight()),
			text.NewCol(2, format.Money(y.RevenueNet), cellTextRight()),
			text.NewCol(2, format.Money(y.Commission), cellTextRight()),
			text.NewCol(2, format.Money(y.ADR), cellTextRight()),
			text.NewCol(1, format.Count(y.NightsSold), cellTextRight()),
			text.NewCol(2, format.Count(y.Bookings), cellTextRight()),
		)
	}
}

func (a *Assembler) addPortalTable(m core.Maroto, portals []domain.PortalKPI) {
	m.AddRow(12,
		text.NewCol(12, "KPI podľa portálu (celé obdobie)", props.Text{Size: 13, Style: fontstyle.Bold, Top: 3}),
	)
	m.AddRow(8,
		text.NewCol(2, "Portál", headerText()),
		text.NewCol(2, "Gross", headerText()),
		text.NewCol(2, "Net", headerText()),
		text.NewCol(2, "Provízia %", headerText()),
		text.NewCol(2, "ADR", headerText()),
		text.NewCol(1, "Noci", headerText()),
		text.NewCol(1, "Rez.", headerText()),
	)
	for _, p := range portals {
		m.AddRow(7,
			text.NewCol(2, p.Portal, cellText()),
			text.NewCol(2, format.Money(p.RevenueGross), cellTextRight()),
			text.NewCol(2, format.Money(p.RevenueNet), cellTextRight()),
			text.NewCol(2, format.Pct(p.CommissionPct), cellTextRight()),
			text.NewCol(2, format.Money(p.ADR), cellTextRight()),
			text.NewCol(1, format.Count(p.NightsSold), cellTextRight()),
			text.NewCol(1, format.Count(p.Bookings), cellTextRight()),
		)
	}
}

func (a *Assembler) addCharts(m core.Maroto, charts map[string]string) {
	m.AddRow(12,
		text.NewCol(12, "Trendy a sezónnosť", props.Text{Size: 13, Style: fontstyle.Bold, Top: 3}),
	)
	titles := []struct {
		metric string
		title  string
	}{
		{chart.MetricRevenue, "Mesačné tržby (gross)"},
		{chart.MetricOccupancy, "Obsadenosť % (mesačne)"},
		{chart.MetricRevPAR, "RevPAR (gross) (mesačne)"},
	}
	for _, t := range titles {
		m.AddRow(8,
			text.NewCol(12, t.title, props.Text{Size: 11, Top: 2}),
		)
		m.AddRow(62,
			image.NewFromFileCol(12, charts[t.metric], props.Rect{
				Center:  true,
				Percent: 100,
			}),
		)
	}
}

func (a *Assembler) addInsights(m core.Maroto, s domain.Summary, ins domain.Insights) {
	m.AddRow(12,
		text.NewCol(12, "Insights & odporúčania", props.Text{Size: 13, Style: fontstyle.Bold, Top: 3}),
	)
	lines := []string{
		fmt.Sprintf("• Najvýnosnejší portál podľa netto: %s.", s.TopPortal),
		fmt.Sprintf("• Najlepší mesiac podľa RevPAR: %s (RevPAR: %s).",
			format.Month(ins.BestMonth), format.Money(ins.BestRevPAR)),
		fmt.Sprintf("• Provízne najdrahší kanál: %s (≈ %s).",
			ins.PriciestPortal, format.Pct(ins.PriciestCommission)),
		fmt.Sprintf("• Priemerná obsadenosť: %s; Priemerný RevPAR: %s.",
			format.Pct(100*s.AvgOccupancy), format.Money(s.AvgRevPAR)),
		"",
		"Odporúčania:",
		"• V peak mesiacoch testovať vyšší ADR – cieľ zvýšiť RevPAR.",
		"• Podporiť priame rezervácie (nižšie náklady distribúcie).",
		"• V slabších mesiacoch cieliť dlhšie pobyty / promo balíčky.",
	}
	for _, line := range lines {
		m.AddRow(6,
			text.NewCol(12, line, props.Text{Size: 10}),
		)
	}
	m.AddRow(10,
		text.NewCol(12, "© Abies Apartmán – interný analytický report", props.Text{Size: 8, Top: 4}),
	)
}

func headerText() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 9}
}

func cellText() props.Text {
	return props.Text{Size: 9}
}

func cellTextRight() props.Text {
	return props.Text{Size: 9, Align: align.Right}
}
