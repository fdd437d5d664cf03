package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
