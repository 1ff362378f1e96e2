package app

import "github.com/hylla/projectarium/internal/domain"

// demoProject pairs a sample project with its starting column.
type demoProject struct {
	input  domain.ProjectInput
	status domain.Status
}

// demoProjects returns the sample board used by development stores.
func demoProjects() []demoProject {
	const root = "/home/sean/code/"
	return []demoProject{
		{domain.ProjectInput{Name: "WotR", Description: "Wizards of the Rift", Path: root + "WotR", Language: "Godot"}, domain.StatusAbandoned},
		{domain.ProjectInput{Name: "LearnScape", Description: "General learning visualizer", Path: root + "LearnScape", Language: "Python"}, domain.StatusAbandoned},
		{domain.ProjectInput{Name: "ROMs", Description: "ROM emulation optimization", Path: root + "ROMs", Language: "C"}, domain.StatusBacklog},
		{domain.ProjectInput{Name: "goverse", Description: "Go VCS application", Path: root + "goverse", File: "cli/main.go", Language: "Go"}, domain.StatusActive},
		{domain.ProjectInput{Name: "projectarium", Description: "Project progress tracker", Path: root + "projectarium", Language: "Go"}, domain.StatusActive},
		{domain.ProjectInput{Name: "snr", Description: "Search and replace plugin", Path: root + "snr", Language: "Lua"}, domain.StatusActive},
		{domain.ProjectInput{Name: "todua", Description: "Todo list for Neovim", Path: root + "todua", Language: "Lua"}, domain.StatusActive},
		{domain.ProjectInput{Name: "macro-blues", Description: "Custom macropad firmware", Path: root + "macro-blues", Language: "C"}, domain.StatusActive},
		{domain.ProjectInput{Name: "leetcode", Description: "Coding interview practice", Path: root + "leetcode", Language: "Python"}, domain.StatusActive},
		{domain.ProjectInput{Name: "TestTaker", Description: "ChatGPT->Python test maker", Path: root + "TestTaker", Language: "Python"}, domain.StatusActive},
		{domain.ProjectInput{Name: "Mission-Uplink", Description: "TFG Mission Uplink", Path: root + "Mission-Uplink", Language: "Go,C"}, domain.StatusActive},
		{domain.ProjectInput{Name: "Sorter", Description: "Sorting algorithm visualizer", Path: root + "Sorter", Language: "Python"}, domain.StatusDone},
		{domain.ProjectInput{Name: "landing-page", Description: "Cute application launcher", Path: root + "landing-page", Language: "Python"}, domain.StatusDone},
	}
}

// demoTodoItems returns the sample checklist attached to the first demo project.
func demoTodoItems() []string {
	return []string{
		"i have a thing to do",
		"here is another thing!",
		"another thing, i have to do",
	}
}
