package agent

import (
	"context"
	"fmt"

	"github.com/mdac/cfodash"
	"github.com/mdac/cfodash/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a CFO or business owner looking at the management accounts of his company.
			He wants to understand margins, cost structure and the bottom line, not accounting jargon.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you have read his ledger already, ask the Analyst first to know the figures.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the expert grounding advice in public information.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert financial advisor,
		very well aware of sector benchmarks, cost-structure norms and the
		latest news about markets and pricing.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in corporate finance advisory. You can search and find
			benchmarks, sector margin norms, labour cost trends and anything that puts
			a company's figures in context. You leverage Google Search to ground your
			assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the user's ledger and targets
// files. Every call re-reads the files so the figures are always current.
func NewAnalyst(ledgerFile, targetsFile string) *Expert {
	lib := analystFunctions(ledgerFile, targetsFile)

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's management
		ledger. He can compute the KPI report, the alert board and the period trend
		for any year and period the ledger covers.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of the user's management ledger.
				You know how to use the Tools to extract the relevant figures.
				You are part of a team of experts, yours is everything about the company's
				own numbers. They might ask you questions about the accounts, pardon their
				approximative language and figure out what they meant.

				Use the available tools to get
				  - the KPI report (margins, EBITDA, net income)
				  - the alert board against the targets
				  - the revenue versus cost trend per period
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// scopeSchema is the year/period parameter block shared by the analyst
// functions.
func scopeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"year": {
				Type:        genai.TypeString,
				Description: `The year to report on, e.g. "2024". Default is every year.`,
			},
			"period": {
				Type:        genai.TypeString,
				Description: `The period to report on, e.g. "Q1" or "ANNO". Default is every period.`,
			},
		},
	}
}

func parseScope(args map[string]any) (year, period string) {
	year, period = cfodash.All, cfodash.All
	if y, ok := args["year"].(string); ok && y != "" {
		year = y
	}
	if p, ok := args["period"].(string); ok && p != "" {
		period = p
	}
	return year, period
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// analystFunctions builds the analyst's tool library over the user's
// ledger and targets files.
func analystFunctions(ledgerFile, targetsFile string) []Function {

	render := func(id, name string, args map[string]any, f func(l *cfodash.Ledger, year, period string) string) *genai.FunctionResponse {
		ledger, err := cfodash.ImportFile(ledgerFile)
		if err != nil {
			return errorResponse(id, name, fmt.Errorf("could not load ledger: %w", err))
		}
		year, period := parseScope(args)
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"output": f(ledger, year, period),
			},
		}
	}

	report := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Report",
			Description: `Report computes the KPI report over the ledger: contribution margin,
			EBITDA, EBIT, net income and the main incidence ratios, plus the reclassified P&L.`,
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted KPI report for the requested scope.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return render(id, "Report", args, func(l *cfodash.Ledger, year, period string) string {
				m := l.Metrics(year, period, cfodash.DefaultPolicy())
				k := cfodash.NewKPI(m, cfodash.Inputs{})
				return renderer.Report(k, year, period)
			})
		},
	}

	alerts := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Alerts",
			Description: `Alerts evaluates the ledger against the user's targets and returns the
			alert board: critical and warning findings with recommended actions, and the
			healthy indicators.`,
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted alert board for the requested scope.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return render(id, "Alerts", args, func(l *cfodash.Ledger, year, period string) string {
				targets, err := cfodash.LoadTargets(targetsFile)
				if err != nil {
					targets = cfodash.DefaultTargets()
				}
				m := l.Metrics(year, period, cfodash.DefaultPolicy())
				k := cfodash.NewKPI(m, cfodash.Inputs{})
				return renderer.Alerts(cfodash.BuildAlerts(k, targets), year, period)
			})
		},
	}

	trend := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Trend",
			Description: `Trend breaks the ledger down per period and returns revenue, total
			costs and the balance of each period.`,
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of revenue and costs per period.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return render(id, "Trend", args, func(l *cfodash.Ledger, year, period string) string {
				return renderer.Trend(l.Trend(year, period, cfodash.DefaultPolicy()), year, period)
			})
		},
	}

	return []Function{report, alerts, trend}
}
