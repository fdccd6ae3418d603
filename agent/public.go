package agent

import (
	"context"
	"fmt"

	"github.com/sonpb/advisor"
	"github.com/sonpb/advisor/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is a personal-banking client asking about their household finances,
			their financial goals and the proposed asset allocation.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and keep the context of your previous questions.

			Devise a plan of questions for the experts and come up with the best
			response to the user's request. Ground every figure you quote in the
			reports the Analyst produces, never invent amounts or ratings.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounding general financial questions
// with Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a financial researcher,
		well aware of financial products, institutions and markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial researcher. You can search and find about
			anything related to financial institutions, products and markets.
			You leverage Google Search to ground your assertions in solid truth.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the user's documents through
// local function tools running the report pipeline.
func NewAnalyst(profilePath, goalsPath, allocationPath string) *Expert {
	lib := []Function{
		householdAnalysis(profilePath),
		goalsPlan(goalsPath, allocationPath),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It is in charge of reading the user's
		financial profile, goals and allocation documents, and of producing the
		household analysis and the goals plan from them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's financial documents.
				Use the available tools to produce the household analysis and the
				goals plan, and answer questions from their content:
				  - financial-health metrics and their ratings
				  - strengths, improvements and recommended actions
				  - goals, monthly investment figures and the asset allocation
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

// respond wraps a rendered report or an error into a function response.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name}
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

// householdAnalysis is the tool rendering the household analysis report.
func householdAnalysis(profilePath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "HouseholdAnalysis",
			Description: `HouseholdAnalysis renders the full household analysis report:
			client information, balance sheet, cash-flow averages, financial-health
			metrics with their ratings, recent spending pattern and the overall verdict.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The household analysis report as markdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			profile, err := advisor.LoadProfile(profilePath)
			if err != nil {
				return respond(id, "HouseholdAnalysis", "", fmt.Errorf("could not load profile: %w", err))
			}
			return respond(id, "HouseholdAnalysis", renderer.RenderHousehold(renderer.NewHousehold(profile)), nil)
		},
	}
}

// goalsPlan is the tool rendering the goals and allocation plan.
func goalsPlan(goalsPath, allocationPath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "GoalsPlan",
			Description: `GoalsPlan renders the financial goals and asset allocation plan:
			the selected goals with their targets and priorities, the allocation table
			with asset classes and expected returns, and the monthly investment plan.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The goals and allocation plan as markdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			goals, err := advisor.LoadGoals(goalsPath)
			if err != nil {
				return respond(id, "GoalsPlan", "", fmt.Errorf("could not load goals: %w", err))
			}
			alloc, err := advisor.LoadAllocation(allocationPath)
			if err != nil {
				return respond(id, "GoalsPlan", "", fmt.Errorf("could not load allocation: %w", err))
			}
			return respond(id, "GoalsPlan", renderer.RenderPlan(renderer.NewPlan(goals, alloc)), nil)
		},
	}
}
