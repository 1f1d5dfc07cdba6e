package views

// Theme is the set of utility classes one look of the site uses. Sections
// take a Theme instead of shipping a variant per look.
type Theme struct {
	Name     string
	Body     string
	Surface  string // alternating section background
	Card     string
	Heading  string
	Muted    string
	Accent   string // gradient stops, used with bg-gradient-to-r
	Text     string // accent text
	Pill     string
	Input    string
	Button   string
	NavIdle  string
	NavOn    string
	Progress string
}

// Dark is the default look.
var Dark = Theme{
	Name:     "dark",
	Body:     "bg-black text-white",
	Surface:  "bg-zinc-950",
	Card:     "rounded-2xl border border-white/10 bg-white/5 backdrop-blur-sm",
	Heading:  "text-white",
	Muted:    "text-gray-400",
	Accent:   "from-sky-500 to-blue-500",
	Text:     "text-sky-400",
	Pill:     "rounded-full border border-sky-500/30 bg-sky-500/10 px-3 py-1 text-xs text-sky-300",
	Input:    "w-full rounded-lg border border-white/10 bg-white/5 px-4 py-3 text-white placeholder-gray-500 focus:border-sky-500 focus:outline-none",
	Button:   "inline-flex items-center gap-2 rounded-full bg-gradient-to-r from-sky-500 to-blue-500 px-6 py-3 font-semibold text-white transition hover:scale-105 disabled:opacity-50",
	NavIdle:  "text-gray-300 hover:text-white",
	NavOn:    "text-sky-400",
	Progress: "bg-gradient-to-r from-sky-500 to-blue-500",
}

// Light is a paper-white alternative.
var Light = Theme{
	Name:     "light",
	Body:     "bg-stone-50 text-neutral-900",
	Surface:  "bg-white",
	Card:     "rounded-2xl border border-neutral-200 bg-white shadow-sm",
	Heading:  "text-neutral-900",
	Muted:    "text-neutral-600",
	Accent:   "from-sky-600 to-blue-600",
	Text:     "text-sky-700",
	Pill:     "rounded-full border border-sky-600/30 bg-sky-50 px-3 py-1 text-xs text-sky-800",
	Input:    "w-full rounded-lg border border-neutral-300 bg-white px-4 py-3 text-neutral-900 placeholder-neutral-400 focus:border-sky-600 focus:outline-none",
	Button:   "inline-flex items-center gap-2 rounded-full bg-gradient-to-r from-sky-600 to-blue-600 px-6 py-3 font-semibold text-white transition hover:scale-105 disabled:opacity-50",
	NavIdle:  "text-neutral-600 hover:text-neutral-900",
	NavOn:    "text-sky-700",
	Progress: "bg-gradient-to-r from-sky-600 to-blue-600",
}

// ThemeByName returns the named theme, falling back to Dark.
func ThemeByName(name string) Theme {
	if name == Light.Name {
		return Light
	}
	return Dark
}
