package roadmap

// Built-in template roadmaps seeded into an empty store on first run, plus
// the factories backing the "new roadmap" and generator preview flows.

// BuiltinTemplates returns the fixed seed set, in display order.
func BuiltinTemplates() []Roadmap {
	return []Roadmap{
		PythonTemplate(),
		DataScienceTemplate(),
		MLOpsTemplate(),
		DeepLearningTemplate(),
	}
}

// NewEmptyRoadmap creates a user-named roadmap with zero phases. Blank
// title and description fall back to generic defaults.
func NewEmptyRoadmap(title, description, imageName string) Roadmap {
	if title == "" {
		title = "New Roadmap"
	}
	if description == "" {
		description = "Your custom learning roadmap"
	}
	if imageName == "" {
		imageName = "star.fill"
	}
	return New(title, description, imageName)
}

// PreviewRoadmap is the canned generator output used in preview mode, so
// the generation flow can be exercised without a network call.
func PreviewRoadmap(name, description string) Roadmap {
	if description == "" {
		description = "AI-generated roadmap for " + name
	}
	return New(name, description, "sparkles",
		NewPhase("Phase 1: Fundamentals",
			NewTask("Understand Basic Concepts",
				NewSubTask("Research key terminology"),
				NewSubTask("Complete introductory tutorial"),
				NewSubTask("Practice with simple exercises"),
			),
			NewTask("Set Up Learning Environment",
				NewSubTask("Install necessary software"),
				NewSubTask("Configure development tools"),
			),
		),
		NewPhase("Phase 2: Core Skills",
			NewTask("Master Intermediate Techniques",
				NewSubTask("Study advanced concepts"),
				NewSubTask("Complete practical exercises"),
				NewSubTask("Join online community for support"),
			),
			NewTask("Build Sample Projects",
				NewSubTask("Create first basic project"),
				NewSubTask("Expand with additional features"),
			),
		),
		NewPhase("Phase 3: Advanced Applications",
			NewTask("Apply Skills to Real Problems",
				NewSubTask("Identify complex use cases"),
				NewSubTask("Develop comprehensive solution"),
			),
			NewTask("Refine and Optimize",
				NewSubTask("Test for performance issues"),
				NewSubTask("Implement best practices"),
				NewSubTask("Seek feedback from experts"),
			),
		),
	)
}

// PythonTemplate is a hands-on path to master Python for scripting,
// automation, backend dev, and data science.
func PythonTemplate() Roadmap {
	return New(
		"Python Mastery Roadmap",
		"A hands-on, practical path to master Python for scripting, automation, backend dev, and data science.",
		"chevron.left.forwardslash.chevron.right",
		NewPhase("Phase 1: Python Foundations",
			NewTask("Python Setup & Environment",
				NewSubTask("Install Python & Setup VS Code"),
				NewSubTask("Use virtual environments"),
				NewSubTask("Write and run Python scripts"),
			),
			NewTask("Python Basics",
				NewSubTask("Variables & Data Types"),
				NewSubTask("Control Flow: if/else, loops"),
				NewSubTask("Functions: def, return, args, kwargs"),
			),
			NewTask("Working with Data Structures",
				NewSubTask("Lists, Tuples, Sets, Dictionaries"),
				NewSubTask("List comprehensions"),
				NewSubTask("Slicing & unpacking"),
			),
		),
		NewPhase("Phase 2: Intermediate Python",
			NewTask("Modules & Packages",
				NewSubTask("Importing built-in and external modules"),
				NewSubTask("Creating your own modules"),
			),
			NewTask("Error Handling",
				NewSubTask("Try-Except blocks"),
				NewSubTask("Custom exception classes"),
			),
			NewTask("File I/O",
				NewSubTask("Reading and writing files"),
				NewSubTask("Working with CSV and JSON"),
			),
		),
		NewPhase("Phase 3: Object-Oriented Programming",
			NewTask("OOP Concepts",
				NewSubTask("Classes and objects"),
				NewSubTask("Attributes and methods"),
			),
			NewTask("Inheritance & Polymorphism",
				NewSubTask("Single and multiple inheritance"),
				NewSubTask("Method overriding and super()"),
			),
		),
		NewPhase("Phase 4: Build & Deploy Projects",
			NewTask("Build Small Projects",
				NewSubTask("To-Do CLI or GUI App"),
				NewSubTask("Weather Checker with API"),
				NewSubTask("Expense Tracker CSV + Pandas"),
			),
			NewTask("Deploy Your Code",
				NewSubTask("Use Git & GitHub"),
				NewSubTask("Deploy a simple Streamlit or Flask app"),
			),
		),
	)
}

// DataScienceTemplate covers data wrangling, statistics, and visualization.
func DataScienceTemplate() Roadmap {
	return New(
		"Data Science Roadmap",
		"A deep dive into data science, from data wrangling and statistics to impactful visualizations and projects.",
		"chart.bar.doc.horizontal",
		NewPhase("Phase 1: Data Fundamentals",
			NewTask("Understand the Data Landscape",
				NewSubTask("Structured vs unstructured data"),
				NewSubTask("The data science workflow"),
			),
			NewTask("Core Tooling",
				NewSubTask("Jupyter notebooks"),
				NewSubTask("NumPy arrays and operations"),
				NewSubTask("Pandas DataFrames and Series"),
			),
		),
		NewPhase("Phase 2: Data Collection & Wrangling",
			NewTask("Acquire Data",
				NewSubTask("Read CSV, Excel, and SQL sources"),
				NewSubTask("Consume REST APIs"),
			),
			NewTask("Clean Data",
				NewSubTask("Handle missing values"),
				NewSubTask("Deduplicate and normalize"),
				NewSubTask("Reshape with merge, pivot, melt"),
			),
		),
		NewPhase("Phase 3: Exploratory Data Analysis",
			NewTask("Summarize Distributions",
				NewSubTask("Descriptive statistics"),
				NewSubTask("Correlation analysis"),
			),
			NewTask("Visualize Findings",
				NewSubTask("Matplotlib fundamentals"),
				NewSubTask("Seaborn heatmaps and pair plots"),
			),
		),
		NewPhase("Phase 4: End-to-End Projects",
			NewTask("Ship a Portfolio Project",
				NewSubTask("Pick a real dataset"),
				NewSubTask("Write an analysis report"),
				NewSubTask("Publish a dashboard"),
			),
		),
	)
}

// MLOpsTemplate covers traditional ML techniques and production concerns.
func MLOpsTemplate() Roadmap {
	return New(
		"ML & MLOps Roadmap",
		"A step-by-step guide to mastering traditional Machine Learning techniques and operationalizing ML models in production.",
		"gearshape.2.fill",
		NewPhase("Phase 1: ML Fundamentals",
			NewTask("Supervised Learning",
				NewSubTask("Linear and logistic regression"),
				NewSubTask("Decision trees and random forests"),
			),
			NewTask("Model Evaluation",
				NewSubTask("Train/test splits and cross-validation"),
				NewSubTask("Precision, recall, and ROC curves"),
			),
		),
		NewPhase("Phase 2: Real-World ML with Sklearn",
			NewTask("Pipelines & Feature Engineering",
				NewSubTask("Build sklearn pipelines"),
				NewSubTask("Encode categorical features"),
				NewSubTask("Scale and select features"),
			),
			NewTask("Hyperparameter Tuning",
				NewSubTask("Grid and randomized search"),
				NewSubTask("Track experiments"),
			),
		),
		NewPhase("Phase 3: ML in Production",
			NewTask("Serve Models",
				NewSubTask("Wrap a model in a REST API"),
				NewSubTask("Containerize with Docker"),
			),
			NewTask("Monitoring and CI/CD",
				NewSubTask("Detect data drift"),
				NewSubTask("Automate retraining pipelines"),
			),
		),
	)
}

// DeepLearningTemplate covers deep learning, LLMs, and AI agents.
func DeepLearningTemplate() Roadmap {
	return New(
		"Deep Learning, LLMs, and AI Agents Roadmap",
		"A comprehensive guide to mastering deep learning, large language models (LLMs), and building intelligent agents.",
		"brain.head.profile",
		NewPhase("Phase 1: Introduction to Deep Learning",
			NewTask("Neural Networks Basics",
				NewSubTask("Understand Neurons and Activation Functions"),
				NewSubTask("Learn Feedforward Neural Networks"),
				NewSubTask("Implement a Basic Neural Network from Scratch"),
			),
			NewTask("Backpropagation and Gradient Descent",
				NewSubTask("Understand Backpropagation"),
				NewSubTask("Implement Gradient Descent"),
			),
		),
		NewPhase("Phase 2: Transformers & Attention",
			NewTask("Learn Transformer Architecture",
				NewSubTask("Understand Attention Mechanism"),
				NewSubTask("Study Multi-head Attention"),
				NewSubTask("Understand Positional Encoding"),
			),
			NewTask("BERT and GPT Models",
				NewSubTask("Understand BERT Architecture"),
				NewSubTask("Fine-Tune BERT for Text Classification"),
			),
		),
		NewPhase("Phase 3: Large Language Models",
			NewTask("Work with LLM APIs",
				NewSubTask("Prompt engineering fundamentals"),
				NewSubTask("Structured output and function calling"),
			),
			NewTask("LangChain & RAG",
				NewSubTask("Build a retrieval-augmented pipeline"),
				NewSubTask("Evaluate RAG quality"),
			),
		),
		NewPhase("Phase 4: AI Agents",
			NewTask("Agent Architectures",
				NewSubTask("Tool use and planning loops"),
				NewSubTask("Memory and state management"),
			),
			NewTask("Ship an Agent Project",
				NewSubTask("Build a task-specific agent"),
				NewSubTask("Add guardrails and evaluation"),
			),
		),
	)
}
