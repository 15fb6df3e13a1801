package config

// Trailing spaces in the template and main question are part of the prompt.
const defaultTemplate = "\nnews title : {{.Title}}\nnews content : {{.Content}}\n\n" +
	"How above news will affect for sri lankan person in his mindset ?\n\n" +
	"{{.Question}} \n\n"

const defaultMainQuestion = "\nSelect positive or negative or neutral \n"

const defaultPositiveQuestion = `
Select the most appropriate positive sub-category to which the above news should belong from the sub-categories below.
Economic Updates
Business and Entrepreneurship
Technology and Innovation
Infrastructure and Development
Education and Workforce Development
Trade and International Relations
Energy and Sustainability
Innovation Ecosystem
Government Policies and Regulations
Infrastructure Investment
Healthcare and Public Health
Agriculture and Food Security
Tourism and Cultural Heritage
Financial Inclusion and Access
Foreign Direct Investment (FDI)
Inclusive Development
Data and Analytics
Sustainable Practices
None of Above
`

const defaultNegativeQuestion = `
Select the most appropriate negative sub-category to which the above news should belong from the sub-categories below.
Crime and Violence
Natural Disasters
Conflict and War
Political Instability
Economic Downturn
Health Crises
Environmental Degradation
Social Injustice
Terrorism
Public Health Alerts
Cybersecurity Threats
Humanitarian Crises
Scandals and Misconduct
Fake News and Misinformation
Negative Social Trends
Sensationalism
Celebrity Gossip and Tabloids
None of Above
`

// DefaultPrompts returns the built-in prompt template and category lists.
func DefaultPrompts() PromptConfig {
	return PromptConfig{
		Template:         defaultTemplate,
		MainQuestion:     defaultMainQuestion,
		PositiveQuestion: defaultPositiveQuestion,
		NegativeQuestion: defaultNegativeQuestion,
	}
}
