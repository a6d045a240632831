package cli

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// Language selects one of the fixed message sets.
type Language int

const (
	English Language = iota
	Portuguese
)

func (l Language) String() string {
	if l == Portuguese {
		return "pt"
	}
	return "en"
}

var portugueseBase, _ = language.Portuguese.Base()

// ParseLanguage maps a BCP 47 tag to a message set. Any Portuguese variant
// (pt, pt-PT, pt-BR) selects Portuguese; every other language, and the empty
// string, selects English.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("parse language %q: %w", s, err)
	}
	if base, _ := tag.Base(); base == portugueseBase {
		return Portuguese, nil
	}
	return English, nil
}

type messageSet struct {
	err error
	en  string
	pt  string
}

var messageSets = []messageSet{
	{domain.ErrTooManyBatches, "too many vaccines", "demasiadas vacinas"},
	{domain.ErrDuplicateBatch, "duplicate batch number", "número de lote duplicado"},
	{domain.ErrInvalidBatchID, "invalid batch", "lote inválido"},
	{domain.ErrInvalidName, "invalid name", "nome inválido"},
	{domain.ErrInvalidDate, "invalid date", "data inválida"},
	{domain.ErrInvalidQuantity, "invalid quantity", "quantidade inválida"},
	{domain.ErrNoSuchVaccine, "no such vaccine", "vacina inexistente"},
	{domain.ErrNoStock, "no stock", "esgotado"},
	{domain.ErrAlreadyVaccinated, "already vaccinated", "já vacinado"},
	{domain.ErrNoSuchBatch, "no such batch", "lote inexistente"},
	{domain.ErrNoSuchUser, "no such user", "utente inexistente"},
	{domain.ErrOutOfMemory, "memory exausted", "sem memória"},
}

// Messages renders command errors in the selected language.
type Messages struct {
	lang Language
}

// NewMessages creates a renderer for lang.
func NewMessages(lang Language) Messages {
	return Messages{lang: lang}
}

// Language returns the selected message set.
func (m Messages) Language() Language {
	return m.lang
}

// Text returns the localized message of a command error.
// ok is false when err is not one of the command errors.
func (m Messages) Text(err error) (text string, ok bool) {
	for _, ms := range messageSets {
		if errors.Is(err, ms.err) {
			if m.lang == Portuguese {
				return ms.pt, true
			}
			return ms.en, true
		}
	}
	return "", false
}

// Line returns the output line for a command error: the localized message,
// prefixed with "<subject>: " when the error names a subject.
func (m Messages) Line(err error) (string, bool) {
	text, ok := m.Text(err)
	if !ok {
		return "", false
	}
	var se *domain.SubjectError
	if errors.As(err, &se) {
		return se.Subject + ": " + text, true
	}
	return text, true
}
