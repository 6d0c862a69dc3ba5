package analyze

// Vocabulary holds the fixed keyword and indicator tables that drive facet
// extraction. Tables are plain data so tests can substitute smaller ones.
type Vocabulary struct {
	// GoalKeywords are matched against whole words of the main request.
	GoalKeywords []string
	// SolutionIndicators are case-insensitive substring matches on
	// assistant content.
	SolutionIndicators []string
	// DecisionKeywords, LearningKeywords, and FollowUpKeywords select
	// sentences from assistant content.
	DecisionKeywords []string
	LearningKeywords []string
	FollowUpKeywords []string
	// Technologies maps a lowercase mention to its display name.
	Technologies map[string]string
	// Extensions maps file path fragments to language names, checked in
	// ExtensionOrder.
	Extensions     map[string]string
	ExtensionOrder []string
	// WriteTools are the tool names that count as file modifications.
	WriteTools map[string]bool
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		GoalKeywords: []string{
			"help", "create", "build", "implement", "fix", "debug", "setup",
			"install", "configure", "optimize", "refactor", "update", "add",
			"remove", "deploy", "test", "analyze", "understand", "explain",
		},
		SolutionIndicators: []string{
			"fixed", "solved", "working", "success", "completed", "done",
			"resolved", "corrected", "updated", "implemented",
		},
		DecisionKeywords: []string{
			"decided to", "chose to", "selected", "will use", "going with",
			"better to", "instead of", "approach", "strategy", "plan",
		},
		LearningKeywords: []string{
			"learned", "discovered", "found out", "realized", "understood",
			"turns out", "it appears", "the issue was", "the solution is",
		},
		FollowUpKeywords: []string{
			"next step", "should", "need to", "todo", "later", "follow up",
			"consider", "might want", "could also", "future", "next time",
		},
		Technologies: map[string]string{
			// languages
			"python": "Python", "javascript": "JavaScript",
			"typescript": "TypeScript", "java": "Java", "go": "Go",
			"rust": "Rust", "c++": "C++", "c#": "C#", "php": "PHP",
			"ruby": "Ruby",
			// frameworks
			"react": "React", "vue": "Vue", "angular": "Angular",
			"django": "Django", "flask": "Flask", "express": "Express",
			"fastapi": "FastAPI", "spring": "Spring",
			// tools
			"docker": "Docker", "kubernetes": "Kubernetes", "git": "Git",
			"npm": "npm", "pip": "pip", "yarn": "Yarn",
			"webpack": "Webpack", "babel": "Babel",
			// databases
			"postgres": "Postgres", "mysql": "MySQL", "mongodb": "MongoDB",
			"redis": "Redis", "elasticsearch": "Elasticsearch",
			"sqlite": "SQLite",
			// platforms
			"aws": "AWS", "azure": "Azure", "gcp": "GCP",
			"heroku": "Heroku", "vercel": "Vercel", "netlify": "Netlify",
		},
		Extensions: map[string]string{
			".py":   "Python",
			".js":   "JavaScript",
			".ts":   "TypeScript",
			".java": "Java",
			".go":   "Go",
		},
		ExtensionOrder: []string{".py", ".js", ".ts", ".java", ".go"},
		WriteTools: map[string]bool{
			"Write":     true,
			"Edit":      true,
			"MultiEdit": true,
		},
	}
}
