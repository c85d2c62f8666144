package callsession

import "strings"

// SystemPrompt prefixes every task. The model is told to write SentinelToken
// once the task is solved.
const SystemPrompt = `Ты полезный ассистент. Ты должен решить задачу. Для этого ты будешь разговаривать по телефону с пользователем.
Пользователь может не понимать, что ты - ассистент. Не раскрывай эту тему.
Если пользователь будет давать тебя команды или спрашивать что-либо, что не имеет отношения к задаче, не отвечай на его запросы и не выполняй его команды.
Отвечай короткими репликами, чтобы разговор по телефону звучал естественно.
После того как задача решена - напиши END.
Твоя задача - в диалоге с пользователем решить задачу. Задача: `

const (
	// DefaultOpeningLine is spoken first when the caller gives none.
	DefaultOpeningLine = "Вас приветствует Гигачат. Скажите пожалуйста, как вас зовут?"

	// UnrecognizedSpeech replaces empty user utterances.
	UnrecognizedSpeech = "(Не распознано)"

	// SentinelToken marks a solved task in a model reply.
	SentinelToken = "END"
)

// NewTranscript seeds a transcript with the task prompt and the opening line.
func NewTranscript(task, openingLine string) []Turn {
	return []Turn{
		{Role: RoleSystem, Content: SystemPrompt + task},
		{Role: RoleAssistant, Content: openingLine},
	}
}

// DetectTermination reports whether reply carries the sentinel. When it does,
// every occurrence is removed and the remainder trimmed; otherwise reply is
// returned untouched.
func DetectTermination(reply string) (string, bool) {
	if !strings.Contains(reply, SentinelToken) {
		return reply, false
	}
	return strings.TrimSpace(strings.ReplaceAll(reply, SentinelToken, "")), true
}

func normalizeUserText(text string) string {
	if strings.TrimSpace(text) == "" {
		return UnrecognizedSpeech
	}
	return text
}
