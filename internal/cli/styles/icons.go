package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion = "\uf02b" // tag
	IconLink    = "\uf0c1" // link
	IconArrow   = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconFolder  = "\uf07b" // folder
	IconForm    = "\uf0f6" // file-text
)
