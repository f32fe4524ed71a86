package puzzle

// A mask indexes a subset of an instance's nodes or items. Sixteen bits
// cover every size the generator is allowed to produce.
type mask uint16

const maxMaskBits = 15

func (mask mask) bitCount() int {
	mask = ((mask & 0xAAAA) >> 1) + (mask & 0x5555)
	mask = ((mask & 0xCCCC) >> 2) + (mask & 0x3333)
	mask = ((mask & 0xF0F0) >> 4) + (mask & 0x0F0F)
	mask = ((mask & 0xFF00) >> 8) + (mask & 0x00FF)
	return int(mask)
}

func (mask mask) has(i int) bool {
	return mask&(1<<i) != 0
}

func (mask mask) indexes() []int {
	is := make([]int, 0, mask.bitCount())
	for i := 0; i <= maxMaskBits; i++ {
		if mask.has(i) {
			is = append(is, i)
		}
	}
	return is
}

func maskOf(indexes []int) (m mask) {
	for _, i := range indexes {
		if 0 <= i && i <= maxMaskBits {
			m |= 1 << i
		}
	}
	return
}
