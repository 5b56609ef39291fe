package math

// Rect is an integer rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// FitInteger scales an inner size by the largest whole factor that fits the
// outer size (at least 1) and centres it. The result may overflow the outer
// size when the outer size is smaller than the inner one.
func FitInteger(outerW, outerH, innerW, innerH int) Rect {
	if innerW <= 0 || innerH <= 0 {
		return Rect{}
	}
	scale := max(min(outerW/innerW, outerH/innerH), 1)
	w, h := innerW*scale, innerH*scale
	return Rect{
		X: (outerW - w) / 2,
		Y: (outerH - h) / 2,
		W: w,
		H: h,
	}
}
