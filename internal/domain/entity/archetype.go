package entity

// Archetype — эталонный вектор признаков фигуры, не являющейся буквой
// (крест, круг, линия).
type Archetype struct {
	Name      string
	Prototype FeatureVector
	MinScore  int // включительно
	MaxScore  int // не включительно
}
