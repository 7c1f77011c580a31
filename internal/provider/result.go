package provider

// TranslationResult is the outcome of one batch translation call.
// Translations maps each successfully translated word to its English
// rendering; Failed lists the words from the batch that did not receive
// a usable translation. A provider that cannot align its response with
// the request reports the whole batch as failed rather than guessing.
type TranslationResult struct {
	Translations map[string]string
	Failed       []string
}
