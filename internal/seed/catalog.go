// Package seed holds the default workplan catalog: the fixed
// three-category, twenty-task engagement plan the dashboard starts from
// when the backing store is empty or unavailable.
package seed

import (
	"time"

	"workplan-dashboard/internal/model"
)

// Category names of the default catalog.
const (
	CategoryBusinessOps = "Business Operations Development (2)"
	CategoryFinancial   = "Financial Excellence (2)"
	CategoryLeadership  = "CEO and Client Leadership Support (1)"
)

// CategoryPrefix returns the task id prefix for a category name. Unknown
// categories fall back to XX, yielding ids like XX001.
func CategoryPrefix(name string) string {
	switch name {
	case CategoryBusinessOps:
		return "BO"
	case CategoryFinancial:
		return "FE"
	case CategoryLeadership:
		return "CL"
	default:
		return "XX"
	}
}

// Categories returns the default categories. Hour totals are summed from
// the catalog tasks at build time and captured on the category row.
func Categories() []model.Category {
	now := time.Now()
	cats := []model.Category{
		{Name: CategoryBusinessOps, Description: "Comprehensive business operations development and scaling support", TeamSize: 2},
		{Name: CategoryFinancial, Description: "Financial leadership, modeling, and FP&A implementation", TeamSize: 2},
		{Name: CategoryLeadership, Description: "Executive support and leadership meeting facilitation", TeamSize: 1},
	}

	totals := make(map[string]int)
	for _, t := range Tasks() {
		if t.EstimatedHours != nil {
			totals[t.Category] += *t.EstimatedHours
		}
	}
	for i := range cats {
		cats[i].TotalEstimatedHours = totals[cats[i].Name]
		cats[i].CreatedAt = now
		cats[i].UpdatedAt = now
	}
	return cats
}

// Tasks returns the default twenty-task catalog. Every task starts
// Not Started with zero completion.
func Tasks() []model.Task {
	tasks := []model.Task{
		{
			ID:             "BO001",
			Title:          "Business Requirements Assessment",
			Description:    "Assess and consolidate program needs and future state business requirements to operate at significantly higher scale",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(40),
			Subtasks: []string{
				"Conduct stakeholder interviews",
				"Document current state processes",
				"Identify scaling bottlenecks",
				"Define future state requirements",
				"Create requirements consolidation report",
			},
		},
		{
			ID:             "BO002",
			Title:          "Future State Operating Model",
			Description:    "Build on prior assessments to finalize target future state business operating model and implementation plans for each business discipline",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(60),
			Dependencies:   []string{"BO001"},
			Subtasks: []string{
				"Review prior assessment findings",
				"Design target operating model",
				"Create discipline-specific implementation plans",
				"Define organizational structure",
				"Document process flows",
			},
		},
		{
			ID:             "BO003",
			Title:          "Business Discipline Maturity Framework",
			Description:    "Codify requisite business discipline maturity, with associated 'heatmap' to prioritize development",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(32),
			Dependencies:   []string{"BO002"},
			Subtasks: []string{
				"Define maturity levels for each discipline",
				"Assess current maturity state",
				"Create maturity heatmap",
				"Prioritize development areas",
				"Document maturity framework",
			},
		},
		{
			ID:             "BO004",
			Title:          "Implementation Plan Execution",
			Description:    "Support implementation plan execution, with initial emphasis on HR, technology, and contract compliance",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(80),
			Dependencies:   []string{"BO003"},
			Subtasks: []string{
				"Establish HR implementation workstream",
				"Launch technology upgrade initiatives",
				"Implement contract compliance framework",
				"Monitor implementation progress",
				"Provide ongoing execution support",
			},
		},
		{
			ID:             "BO005",
			Title:          "Progress Monitoring & Reporting",
			Description:    "Monitor, evaluate, and report implementation progress",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(24),
			Dependencies:   []string{"BO004"},
			Subtasks: []string{
				"Establish progress tracking metrics",
				"Create reporting templates",
				"Conduct weekly progress reviews",
				"Generate monthly progress reports",
				"Present findings to leadership",
			},
		},
		{
			ID:             "BO006",
			Title:          "Business Operations Rhythm",
			Description:    "Establish long-term business operations operating rhythm, to include governance, decision rights, and meeting/decision cadence",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(36),
			Dependencies:   []string{"BO002"},
			Subtasks: []string{
				"Design governance structure",
				"Define decision rights matrix",
				"Establish meeting cadences",
				"Create decision-making processes",
				"Document operating rhythm",
			},
		},
		{
			ID:             "BO007",
			Title:          "Risk & Opportunity Register",
			Description:    "Document and codify risk and opportunity register for regular Client leadership review",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(28),
			Subtasks: []string{
				"Identify program risks and opportunities",
				"Create risk assessment framework",
				"Establish opportunity evaluation process",
				"Document register format",
				"Schedule regular leadership reviews",
			},
		},
		{
			ID:             "BO008",
			Title:          "Stakeholder Engagement Support",
			Description:    "Support Client engagement with key program stakeholders",
			Category:       CategoryBusinessOps,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(32),
			Subtasks: []string{
				"Map key stakeholders",
				"Develop engagement strategy",
				"Prepare stakeholder communications",
				"Facilitate stakeholder meetings",
				"Maintain stakeholder relationships",
			},
		},
		{
			ID:             "FE001",
			Title:          "Interim CFO Function",
			Description:    "Serve in an interim 'CFO' function for Client",
			Category:       CategoryFinancial,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(120),
			Subtasks: []string{
				"Establish CFO operational framework",
				"Implement financial controls",
				"Oversee cash flow management",
				"Provide strategic financial guidance",
				"Report to board/leadership",
			},
		},
		{
			ID:             "FE002",
			Title:          "Financial Data Integration",
			Description:    "Collect, integrate and analyze financial inputs from each Client activity",
			Category:       CategoryFinancial,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(48),
			Dependencies:   []string{"FE001"},
			Subtasks: []string{
				"Map all financial data sources",
				"Establish data collection processes",
				"Create integration workflows",
				"Develop analytical frameworks",
				"Generate integrated reports",
			},
		},
		{
			ID:             "FE003",
			Title:          "Integrated Financial Model",
			Description:    "Build upon prior models to create integrated financial model for expansion program",
			Category:       CategoryFinancial,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(56),
			Dependencies:   []string{"FE002"},
			Subtasks: []string{
				"Review existing financial models",
				"Design integrated model architecture",
				"Build expansion scenario models",
				"Validate model assumptions",
				"Document model methodology",
			},
		},
		{
			ID:             "FE004",
			Title:          "Scenario & Sensitivity Analysis",
			Description:    "Conduct scenario and sensitivity analyses",
			Category:       CategoryFinancial,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(40),
			Dependencies:   []string{"FE003"},
			Subtasks: []string{
				"Define scenario parameters",
				"Build sensitivity analysis framework",
				"Run multiple scenario models",
				"Analyze results and implications",
				"Present findings to leadership",
			},
		},
		{
			ID:             "FE005",
			Title:          "Program Risk Identification",
			Description:    "Use financial information to identify key program risks at scale",
			Category:       CategoryFinancial,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(32),
			Dependencies:   []string{"FE004"},
			Subtasks: []string{
				"Analyze financial risk indicators",
				"Identify scaling risk factors",
				"Quantify potential risk impact",
				"Develop risk mitigation strategies",
				"Create risk monitoring dashboard",
			},
		},
		{
			ID:             "FE006",
			Title:          "Employee Retention Incentives",
			Description:    "Work with Client HR lead to incentivize long-term employee retention and platform expansion",
			Category:       CategoryFinancial,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(24),
			Subtasks: []string{
				"Analyze current retention metrics",
				"Design retention incentive programs",
				"Model financial impact of retention",
				"Collaborate with HR on implementation",
				"Monitor program effectiveness",
			},
		},
		{
			ID:             "FE007",
			Title:          "Financial Guidance & Decision Support",
			Description:    "Provide financial guidance to other Client employees and decisions",
			Category:       CategoryFinancial,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(36),
			Subtasks: []string{
				"Establish financial advisory framework",
				"Create decision support tools",
				"Provide ongoing financial coaching",
				"Review major financial decisions",
				"Document guidance processes",
			},
		},
		{
			ID:             "FE008",
			Title:          "Formal FP&A Function",
			Description:    "Implement formal FP&A function",
			Category:       CategoryFinancial,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(44),
			Dependencies:   []string{"FE003"},
			Subtasks: []string{
				"Design FP&A organizational structure",
				"Implement planning processes",
				"Establish budgeting and forecasting",
				"Create performance analytics",
				"Train staff on FP&A processes",
			},
		},
		{
			ID:             "FE009",
			Title:          "External Stakeholder Support",
			Description:    "Support financial inquiries from external Client stakeholders",
			Category:       CategoryFinancial,
			Priority:       model.PriorityLow,
			EstimatedHours: hours(20),
			Subtasks: []string{
				"Identify external stakeholders",
				"Prepare stakeholder information packages",
				"Respond to financial inquiries",
				"Maintain stakeholder relationships",
				"Document all interactions",
			},
		},
		{
			ID:             "CL001",
			Title:          "Ad Hoc Issue Support",
			Description:    "Provide ad hoc support to emergent issues",
			Category:       CategoryLeadership,
			Priority:       model.PriorityHigh,
			EstimatedHours: hours(40),
			Subtasks: []string{
				"Establish issue escalation process",
				"Create rapid response framework",
				"Maintain issue tracking system",
				"Provide timely issue resolution",
				"Document lessons learned",
			},
		},
		{
			ID:             "CL002",
			Title:          "Presentation & Meeting Materials",
			Description:    "Prepare presentation and meeting materials for Client leadership",
			Category:       CategoryLeadership,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(32),
			Subtasks: []string{
				"Create presentation templates",
				"Develop executive dashboard content",
				"Prepare board meeting materials",
				"Design stakeholder presentations",
				"Maintain materials library",
			},
		},
		{
			ID:             "CL003",
			Title:          "Direct Meeting Support",
			Description:    "Provide direct meeting support to Client leadership",
			Category:       CategoryLeadership,
			Priority:       model.PriorityMedium,
			EstimatedHours: hours(48),
			Subtasks: []string{
				"Attend leadership meetings",
				"Provide real-time analytical support",
				"Take meeting notes and actions",
				"Follow up on meeting outcomes",
				"Coordinate meeting logistics",
			},
		},
	}

	now := time.Now()
	for i := range tasks {
		tasks[i].Status = model.StatusNotStarted
		if tasks[i].Dependencies == nil {
			tasks[i].Dependencies = []string{}
		}
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
	}
	return tasks
}

func hours(v int) *int {
	return &v
}
