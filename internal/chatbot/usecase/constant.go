package usecase

// Result limits per action.
const (
	MaxArticles = 5 // Top-5 most relevant articles
	MaxClusters = 5 // Top-5 most relevant clusters
)

// Generation parameters for conversational actions.
const (
	ReplyTemperature = 0.7
	ReplyMaxTokens   = 1024
)

// System prompts per action. Users write in Spanish or English; the model
// answers in the user's language.
const (
	PromptExplainSystem = `Eres un asistente experto que explica conceptos, términos técnicos o siglas ` +
		`de manera clara y concisa. Responde en el idioma del usuario.`

	PromptSummarizeSystem = `Eres un asistente experto en literatura científica. Resume el texto ` +
		`proporcionado destacando los hallazgos clave y las palabras clave más relevantes. ` +
		`Sé conciso y responde en el idioma del usuario.`

	PromptChatSystem = `Eres el asistente de una plataforma de artículos científicos. Puedes buscar ` +
		`artículos, recomendar temas de investigación, explicar conceptos y resumir textos. ` +
		`Responde de forma breve y amable, en el idioma del usuario.`
)

// User-facing messages.
const (
	MessageArticlesFound = "Me muestro articulos que seguramente sean de tu interes"
	MessageNoArticles    = "No pude encontrar artículos relacionados. Intenta reformular tu búsqueda con otros términos."

	MessageThemesFound = "Seguramente estos temas sean de tu interes"
	MessageNoThemes    = "No pude encontrar temas relacionados. Intenta pedirlo de otra manera o usa términos más específicos."

	// MessageRephrase is the conversational downgrade when no vocabulary
	// keyword could be extracted from a search request.
	MessageRephrase = "No entendí tu solicitud, por favor vuelve a escribirla."

	MessageMetricsNotImplemented = "La generación de métricas y visualizaciones aún no está implementada."
)
