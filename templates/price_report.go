package templates

import (
	"html/template"
	"strings"
)

// PriceReportData feeds the HTML price report template.
type PriceReportData struct {
	QueryDate string
	Currency  string
	Rows      []PriceReportRow
}

// PriceReportRow is one itinerary line in the report table.
type PriceReportRow struct {
	ID        string
	Route     string
	Airlines  string
	Nights    int
	Price     float64
	PriceEUR  float64
	Departure string
	Arrival   string
	DeepLink  string
}

var priceReportTemplate = template.Must(template.New("priceReport").Parse(`<html>
<body>
<h1>Flight fare report</h1>
<p>Query date: {{.QueryDate}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>ID</th><th>Route</th><th>Airlines</th><th>Nights</th><th>Price ({{.Currency}})</th><th>Price (EUR)</th><th>Departure</th><th>Arrival</th><th></th></tr>
{{range .Rows}}<tr><td>{{.ID}}</td><td>{{.Route}}</td><td>{{.Airlines}}</td><td>{{.Nights}}</td><td>{{printf "%.0f" .Price}}</td><td>{{printf "%.2f" .PriceEUR}}</td><td>{{.Departure}}</td><td>{{.Arrival}}</td><td>{{if .DeepLink}}<a href="{{.DeepLink}}">book</a>{{end}}</td></tr>
{{else}}<tr><td colspan="9">No itineraries stored yet.</td></tr>
{{end}}</table>
</body>
</html>
`))

// RenderPriceReport renders the report table. Zero rows render a valid
// empty report.
func RenderPriceReport(data PriceReportData) (string, error) {
	var sb strings.Builder
	if err := priceReportTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
