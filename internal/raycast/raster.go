package raycast

// rasterize writes the current slices into frame, row-major. Rows strictly
// between a slice's Start and End take the wall colour; the rows at Start and
// End themselves stay background.
func (p *Projector) rasterize(frame []byte) {
	bg := p.background
	for y := 0; y < p.height; y++ {
		row := frame[y*p.width*4 : (y+1)*p.width*4]
		for x := 0; x < p.width; x++ {
			s := &p.slices[x]
			px := row[x*4 : x*4+4]
			if y > s.Start && y < s.End {
				copy(px, s.Color[:])
			} else {
				copy(px, bg[:])
			}
		}
	}
}
