package entity

const (
	// MomentCount — число инвариантных моментов Ху.
	MomentCount = 7
	// GeometryCount — число геометрических дескрипторов.
	GeometryCount = 10
	// FeatureLength — полная длина вектора признаков.
	FeatureLength = MomentCount + GeometryCount
)

// FeatureVector — вектор признаков формы: 7 моментов Ху и 10 геометрических характеристик.
type FeatureVector []float64

// ZeroFeatures возвращает нулевой вектор полной длины.
func ZeroFeatures() FeatureVector {
	return make(FeatureVector, FeatureLength)
}

// Moments возвращает часть вектора с моментами.
func (v FeatureVector) Moments() []float64 {
	return v[:MomentCount]
}

// Geometry возвращает часть вектора с геометрическими характеристиками.
func (v FeatureVector) Geometry() []float64 {
	return v[MomentCount:]
}

// IsZero сообщает, что все элементы вектора равны нулю.
func (v FeatureVector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Clone возвращает независимую копию вектора.
func (v FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(v))
	copy(out, v)
	return out
}
