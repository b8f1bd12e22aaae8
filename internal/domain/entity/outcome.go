package entity

// LetterStatus — итог обработки одной буквы.
type LetterStatus string

const (
	LetterProcessed LetterStatus = "processed" // вектор получен, записи добавлены
	LetterSkipped   LetterStatus = "skipped"   // буква пропущена
)

// LetterOutcome хранит результат обработки буквы: вектор или причину пропуска.
type LetterOutcome struct {
	Letter   Letter
	Status   LetterStatus
	Features FeatureVector
	Reason   string
}

// Processed создаёт успешный результат.
func Processed(l Letter, features FeatureVector) LetterOutcome {
	return LetterOutcome{Letter: l, Status: LetterProcessed, Features: features}
}

// Skipped создаёт результат с причиной пропуска.
func Skipped(l Letter, reason string) LetterOutcome {
	return LetterOutcome{Letter: l, Status: LetterSkipped, Reason: reason}
}
