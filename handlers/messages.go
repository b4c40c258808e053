package handlers

const (
	msgCannotParse       = "Cannot parse JSON"
	msgQuestionRequired  = "La question est requise"
	msgAnswerRequired    = "La réponse est requise"
	msgFetchFailed       = "Erreur lors de la récupération des questions"
	msgSubmitFailed      = "Erreur lors de la soumission de la question"
	msgSubmitted         = "Question soumise avec succès"
	msgAnswerFailed      = "Erreur lors de l'enregistrement de la réponse"
	msgAnswered          = "Réponse enregistrée avec succès"
	msgDeleteFailed      = "Erreur lors de la suppression"
	msgDeleted           = "Question supprimée"
	msgExportFailed      = "Erreur lors de l'export"
	msgExportCSVFailed   = "Erreur lors de l'export CSV"
	msgValidationDefault = "Champ requis manquant"
)

var requiredMessages = map[string]string{
	"question": msgQuestionRequired,
	"answer":   msgAnswerRequired,
}

func requiredMessage(field string) string {
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return msgValidationDefault
}
