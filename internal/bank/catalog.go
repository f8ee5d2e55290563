package bank

import "github.com/forest0xia/ai-career-navigator/internal/model"

var (
	coreAndAdvanced = []model.Track{model.TrackCore, model.TrackAdvanced}
	advancedOnly    = []model.Track{model.TrackAdvanced}
	quickAndAdv     = []model.Track{model.TrackQuick, model.TrackAdvanced}
)

func sent(confidence, anxiety, motivation int) *model.Sentiment {
	return &model.Sentiment{Confidence: confidence, Anxiety: anxiety, Motivation: motivation}
}

func tool(name, category string) model.Option {
	return model.Option{Text: name, Category: category}
}

// Default returns the built-in six-axis catalog
func Default() *Bank {
	return MustNew(defaultQuestions())
}

func defaultQuestions() []model.Question {
	return []model.Question{
		// Calibration
		{
			ID:          "domain",
			Section:     "calibration",
			Title:       "Which best describes your professional domain?",
			Calibration: true,
			Domain:      true,
			Options: []model.Option{
				{Text: "Software Engineering / IT / DevOps", Tags: []string{"tech"}, Exposure: 85},
				{Text: "Data Science / Analytics / Research", Tags: []string{"tech"}, Exposure: 80},
				{Text: "Design / Creative / Content / Marketing", Tags: []string{"creative"}, Exposure: 70},
				{Text: "Business / Management / Operations / Finance", Tags: []string{"business"}, Exposure: 65},
				{Text: "Healthcare / Education / Legal / Government", Tags: []string{"regulated"}, Exposure: 50},
				{Text: "Trades / Manufacturing / Logistics / Retail", Tags: []string{"physical"}, Exposure: 35},
				{Text: "Student / Career Changer / Between roles", Tags: []string{"early"}, Exposure: 60},
				{Text: "Other", Tags: []string{"business"}, Exposure: 55},
			},
		},
		{
			ID:          "a1_frequency",
			Section:     "adoption",
			Title:       "How often do you use AI today?",
			Calibration: true,
			Frequency:   true,
			Axes:        map[model.Axis][]float64{model.AxisAdoption: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Rarely or never", Level: 1},
				{Text: "A few times a month", Level: 1.5},
				{Text: "1-2 days a week", Level: 2},
				{Text: "Most days", Level: 3},
				{Text: "Daily, multiple times a day", Level: 4},
			},
		},
		{
			ID:          "a3_dependency",
			Section:     "adoption",
			Title:       "If AI disappeared tomorrow, how disrupted would you be?",
			Calibration: true,
			Axes:        map[model.Axis][]float64{model.AxisAdoption: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Not disrupted at all", Level: 1},
				{Text: "Minor inconvenience", Level: 1.5},
				{Text: "Noticeably slower", Level: 2},
				{Text: "Some workflows would break", Level: 3},
				{Text: "Significant disruption", Level: 4},
			},
		},
		{
			ID:          "m2_confidence",
			Section:     "mindset",
			Title:       "When using AI, you usually feel:",
			Calibration: true,
			Axes:        map[model.Axis][]float64{model.AxisMindset: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Don't know how to start", Level: 1, Sent: sent(-1, 1, 0)},
				{Text: "I can get basic help from it", Level: 2, Sent: sent(1, 0, 1)},
				{Text: "Comfortable experimenting and steering", Level: 3, Sent: sent(2, 0, 2)},
				{Text: "Confident I can get reliable results", Level: 4, Sent: sent(3, 0, 2)},
				{Text: "In control of outcomes via process design", Level: 5, Sent: sent(4, 0, 3)},
			},
		},
		{
			ID:          "c1_repeat",
			Section:     "craft",
			Title:       "You did a task with AI today. Tomorrow you need to do it again. You:",
			Calibration: true,
			Axes:        map[model.Axis][]float64{model.AxisCraft: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Redo it manually", Level: 1},
				{Text: "Ask AI again from scratch", Level: 1.5},
				{Text: "Reuse the same prompt", Level: 2},
				{Text: "Follow a template or checklist I made", Level: 3},
				{Text: "It's already systematized: inputs, outputs, rubric, handoffs", Level: 5},
			},
		},

		// Adoption
		{
			ID:      "a2_breadth",
			Section: "adoption",
			Title:   "Where do you use AI regularly?",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisAdoption: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Not yet", Level: 1},
				{Text: "One area (e.g. writing or search)", Level: 1.5},
				{Text: "2-3 areas", Level: 2},
				{Text: "4+ areas", Level: 3},
				{Text: "It touches most of my workflows daily", Level: 4},
			},
		},

		// Mindset
		{
			ID:        "m1_reaction",
			Section:   "mindset",
			Title:     "When you hear about rapid AI progress, you mostly feel:",
			Sentiment: true,
			Axes:      map[model.Axis][]float64{model.AxisMindset: {0, 2, 3, 1, 0}},
			Options: []model.Option{
				{Text: "Unaffected, doesn't concern me", Level: 1, Sent: sent(0, 0, 0)},
				{Text: "Curious, want to learn more", Level: 2, Sent: sent(0, 0, 1)},
				{Text: "Excited, feels like opportunity", Level: 3, Sent: sent(1, 0, 2)},
				{Text: "Anxious, worried about falling behind", Level: 2, Sent: sent(-1, 2, 1)},
				{Text: "Overwhelmed, trying to avoid it", Level: 1, Sent: sent(-1, 3, 0)},
			},
		},
		{
			ID:      "m3_motivation",
			Section: "mindset",
			Title:   "What drives your AI interest?",
			Axes:    map[model.Axis][]float64{model.AxisMindset: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "No strong reason yet", Level: 1, Sent: sent(0, 0, 0)},
				{Text: "Curiosity and learning", Level: 2, Sent: sent(0, 0, 1)},
				{Text: "Productivity, getting more done", Level: 3, Sent: sent(1, 0, 2)},
				{Text: "Career advantage", Level: 3, Sent: sent(1, 0, 3)},
				{Text: "Building systems and products with AI", Level: 5, Sent: sent(2, 0, 4)},
			},
		},
		{
			ID:      "m4_trust",
			Section: "mindset",
			Title:   "When AI gives you a wrong answer, you:",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisMindset: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Stop relying on AI for that", Level: 1},
				{Text: "Reword and retry once", Level: 2},
				{Text: "Ask for its reasoning step by step", Level: 3},
				{Text: "Add constraints, examples, and ask it to verify", Level: 4},
				{Text: "Cross-check with sources/tests and iterate", Level: 5},
			},
		},
		{
			ID:      "m5_learning",
			Section: "mindset",
			Title:   "When you see a new AI trend, what do you do?",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisMindset: {0, 1, 1, 3, 4}},
			Options: []model.Option{
				{Text: "Ignore it", Level: 1},
				{Text: "Save it \"for later\"", Level: 1.5},
				{Text: "Skim and move on", Level: 2},
				{Text: "Test it on a real task", Level: 4},
				{Text: "Evaluate with a checklist or benchmark", Level: 5},
			},
		},

		// Craft
		{
			ID:      "c2_capture",
			Section: "craft",
			Title:   "When you discover a prompt or workflow that works well:",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisCraft: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "It disappears, I forget it", Level: 1},
				{Text: "Save the chat or screenshot it", Level: 1.5},
				{Text: "Write notes about what worked", Level: 2},
				{Text: "Add it to a reusable prompt/template library", Level: 4},
				{Text: "Convert it into a shared tool with examples", Level: 5},
			},
		},
		{
			ID:      "c3_quality",
			Section: "craft",
			Title:   "How do you ensure AI output quality?",
			Tracks:  coreAndAdvanced,
			Axes: map[model.Axis][]float64{
				model.AxisCraft:       {0, 1, 2, 3, 4},
				model.AxisReliability: {0, 0, 1, 2, 3},
			},
			Options: []model.Option{
				{Text: "Retry until it looks okay", Level: 1},
				{Text: "Give clearer instructions", Level: 2},
				{Text: "Add constraints and examples", Level: 3},
				{Text: "Use a rubric and structured output format", Level: 4},
				{Text: "Workflow with review checkpoints and eval criteria", Level: 5},
			},
		},
		{
			ID:         "c4_deadline",
			Section:    "craft",
			Title:      "Deadline pressure hits. You:",
			CrossCheck: true,
			Axes:       map[model.Axis][]float64{model.AxisCraft: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Go fully manual, no time to experiment", Level: 1},
				{Text: "Quick AI help for speed only", Level: 2},
				{Text: "Reuse prompts I know work", Level: 3},
				{Text: "Follow my repeatable workflow", Level: 4},
				{Text: "Systems and automation already in place", Level: 5},
			},
		},

		// Tech depth
		{
			ID:      "t1_mode",
			Section: "tech",
			Title:   "How do you typically interact with AI?",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisTechDepth: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Chat UI only", Level: 1},
				{Text: "Copy/paste between AI and other tools", Level: 2},
				{Text: "Browser extensions or no-code automation", Level: 3},
				{Text: "APIs, scripts, or programmatic access", Level: 4},
				{Text: "Integrated AI services in my products/workflows", Level: 5},
			},
		},
		{
			ID:      "t2_knowledge",
			Section: "tech",
			Title:   "When you need AI to work with your own documents or data:",
			Tracks:  advancedOnly,
			Axes:    map[model.Axis][]float64{model.AxisTechDepth: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "I don't do this", Level: 1},
				{Text: "Paste minimal text and hope", Level: 1.5},
				{Text: "Curate relevant snippets carefully", Level: 3},
				{Text: "Prepare a reference pack or prompt kit", Level: 4},
				{Text: "Use retrieval/search or structured data pipelines", Level: 5},
			},
		},

		// Reliability
		{
			ID:      "r1_consistency",
			Section: "reliability",
			Title:   "You need consistent AI results at scale. You:",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisReliability: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Avoid using AI for important things", Level: 1},
				{Text: "Manual review of everything", Level: 2},
				{Text: "Tighten prompts and output formats", Level: 3},
				{Text: "Rubrics, rules, and structured outputs", Level: 4},
				{Text: "Eval sets, automated scoring, and tests", Level: 5},
			},
		},
		{
			ID:      "r2_mistake",
			Section: "reliability",
			Title:   "AI makes a serious mistake in production. You:",
			Tracks:  advancedOnly,
			Axes:    map[model.Axis][]float64{model.AxisReliability: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Stop using AI for important tasks", Level: 1},
				{Text: "Add more human review", Level: 2},
				{Text: "Improve prompts and instructions", Level: 3},
				{Text: "Add safeguards and monitoring triggers", Level: 4},
				{Text: "Build feedback loop: logs, regression tests, eval gates", Level: 5},
			},
		},

		// Agents
		{
			ID:      "g1_maturity",
			Section: "agents",
			Title:   "Your experience with AI agents (multi-step, tool-using AI):",
			Tracks:  coreAndAdvanced,
			Axes:    map[model.Axis][]float64{model.AxisAgents: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Not sure what \"agents\" means", Level: 1},
				{Text: "Seen demos but never used one", Level: 1.5},
				{Text: "Tried toy agents or simple automations", Level: 2},
				{Text: "Built agents for personal workflows (weekly use)", Level: 4},
				{Text: "Built or ran agents for team/users (production-ish)", Level: 5},
			},
		},
		{
			ID:      "g2_orchestration",
			Section: "agents",
			Title:   "How do you handle multi-step AI tasks?",
			Tracks:  advancedOnly,
			Axes:    map[model.Axis][]float64{model.AxisAgents: {0, 1, 2, 3, 4}},
			Options: []model.Option{
				{Text: "Manual steps only, I do each part", Level: 1},
				{Text: "Ask AI step by step, I coordinate", Level: 2},
				{Text: "Repeatable checklist or workflow", Level: 3},
				{Text: "Semi-automated chaining across tools", Level: 4},
				{Text: "Plan, act, check loops with state and retries", Level: 5},
			},
		},

		// Self-identify anchor, skipped on the core track
		{
			ID:      "self_identify",
			Section: "future",
			Title:   "Which feels closest to you right now?",
			Tracks:  quickAndAdv,
			Axes: map[model.Axis][]float64{
				model.AxisAdoption: {0, 1, 2, 2, 3},
				model.AxisCraft:    {0, 0, 1, 2, 3},
			},
			Options: []model.Option{
				{Text: "AI observer, watching from the sidelines", Level: 1},
				{Text: "Casual user, it helps sometimes", Level: 2},
				{Text: "Power user, AI is part of my daily work", Level: 3},
				{Text: "Workflow optimizer, I design how AI fits into processes", Level: 4},
				{Text: "AI builder, I create tools and systems with AI", Level: 5},
			},
		},

		// Tools, shown to everyone last
		{
			ID:      "ai_tools",
			Section: "future",
			Type:    model.QuestionTypeMulti,
			Title:   "Which AI tools do you actively use?",
			Tools:   true,
			Options: []model.Option{
				tool("ChatGPT (OpenAI)", "general"),
				tool("Claude (Anthropic)", "general"),
				tool("Google Gemini", "general"),
				tool("DeepSeek", "general"),
				tool("Doubao (ByteDance)", "general"),
				tool("Kimi (Moonshot AI)", "general"),
				tool("Qwen (Alibaba)", "general"),
				tool("Perplexity", "research"),
				tool("Microsoft Copilot", "productivity"),
				tool("GitHub Copilot", "coding"),
				tool("Cursor", "coding"),
				tool("Windsurf", "coding"),
				tool("Kiro", "coding"),
				tool("Claude Code", "coding"),
				tool("MiniMax / Hailuo AI", "creative"),
				tool("Midjourney", "creative"),
				tool("DALL-E / ChatGPT Images", "creative"),
				tool("Stable Diffusion / FLUX", "creative"),
				tool("Adobe Firefly", "creative"),
				tool("Canva AI", "creative"),
				tool("Suno / Udio (music)", "creative"),
				tool("ElevenLabs (voice)", "creative"),
				tool("Notion AI", "productivity"),
				tool("Grammarly AI", "productivity"),
				tool("LangChain / LlamaIndex / AI frameworks", "advanced"),
				tool("Hugging Face / open-source models", "advanced"),
				tool("Other", "other"),
				tool(NoToolSentinel, "none"),
			},
		},
	}
}
