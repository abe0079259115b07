package cartridge

// f6Mapper implements the standard 16K ("F6") layout: four 4K banks,
// switched by accessing $1FF6 (bank 0) through $1FF9 (bank 3). Power-on
// bank is 0.
type f6Mapper struct {
	banks   [4][4096]uint8
	curBank int
}

func newF6Mapper(data []byte) *f6Mapper {
	m := &f6Mapper{curBank: 0}
	for b := 0; b < 4; b++ {
		copy(m.banks[b][:], data[b*4096:(b+1)*4096])
	}
	return m
}

func (m *f6Mapper) read(addr uint16) uint8 {
	return m.banks[m.curBank][addr&0x0fff]
}

func (m *f6Mapper) observeAccess(addr uint16) {
	switch addr & 0x0fff {
	case 0x0ff6:
		m.curBank = 0
	case 0x0ff7:
		m.curBank = 1
	case 0x0ff8:
		m.curBank = 2
	case 0x0ff9:
		m.curBank = 3
	}
}

func (m *f6Mapper) bank() int     { return m.curBank }
func (m *f6Mapper) numBanks() int { return 4 }
