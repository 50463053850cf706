package generator

import "strings"

// DefaultSystemPrompt steers the model toward bare continuations instead of
// chat-style answers.
const DefaultSystemPrompt = "You are an autocomplete assistant. Your task is to suggest ONLY the next few words that would naturally complete the user's text. IMPORTANT: Do not start suggestions with phrases like 'Based on', 'I would', 'You should', or any other filler words. Get straight to the point with the actual continuation. Do not add any context, explanations, or new sentences. Return only the direct continuation of the existing text. Keep suggestions concise and focused on completing the current thought."

// BuildPrompt assembles the two-turn conversation (system instruction plus
// user text) into the flat prompt the pipeline consumes.
func BuildPrompt(systemPrompt, text string) string {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	var b strings.Builder
	b.WriteString("System: ")
	b.WriteString(systemPrompt)
	b.WriteString("\nUser: ")
	b.WriteString(text)
	b.WriteString("\nAssistant:")
	return b.String()
}

// ExtractNew keeps only the newly generated content: some runtimes echo the
// prompt back, so a leading copy of it is dropped, then surrounding
// whitespace is stripped. No stop-sequence truncation happens here;
// punctuation may appear mid-suggestion.
func ExtractNew(prompt, output string) string {
	if rest, ok := strings.CutPrefix(output, prompt); ok {
		output = rest
	}
	return strings.TrimSpace(output)
}
