package layout

// Page is one of the host page tabs
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageProjects
	PageContact
	PageCount
)

var pageNames = [PageCount]string{"Home", "About", "Projects", "Contact"}

func (p Page) String() string {
	if p < 0 || p >= PageCount {
		return "?"
	}
	return pageNames[p]
}

// Next cycles to the following tab
func (p Page) Next() Page {
	return (p + 1) % PageCount
}

// pageText is the body copy of the non-home pages
var pageText = [PageCount][]string{
	PageAbout: {
		"Developer working on terminal tools, simulations",
		"and small systems that run for a long time.",
		"",
		"The home page runs a snake across the free space",
		"between the panels. Click an empty spot to drop food.",
	},
	PageProjects: {
		"gridsnake      toroidal snake ambient background",
		"maze-gen       recursive maze generator",
		"beat-sandbox   step sequencer in the terminal",
	},
	PageContact: {
		"mail     hello@example.org",
		"code     github.com/lixenwraith",
	},
}
