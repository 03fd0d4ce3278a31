package testutil

import (
	"context"
	"sync"
)

// FakeLLM implementa ports.LLMService con respuestas fijas. Si Block es true, espera a que
// el contexto expire y devuelve ctx.Err().
type FakeLLM struct {
	Reply string
	Err   error
	Block bool

	mu       sync.Mutex
	Prompts  []string
	MimeType string
}

func (f *FakeLLM) answer(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.Prompts = append(f.Prompts, prompt)
	f.mu.Unlock()
	if f.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// Chat devuelve Reply.
func (f *FakeLLM) Chat(ctx context.Context, message string) (string, error) {
	return f.answer(ctx, message)
}

// AnalyzeHPP devuelve Reply y registra el prompt recibido.
func (f *FakeLLM) AnalyzeHPP(ctx context.Context, userInput string) (string, error) {
	return f.answer(ctx, userInput)
}

// ReadReceipt devuelve Reply y registra el tipo MIME recibido.
func (f *FakeLLM) ReadReceipt(ctx context.Context, _ []byte, mimeType string) (string, error) {
	f.mu.Lock()
	f.MimeType = mimeType
	f.mu.Unlock()
	return f.answer(ctx, "receipt")
}
