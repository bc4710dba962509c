package entity

// RefID is the token minted by the host at the start of every full page load.
// The page tags each bridge call with it so the host can drop calls that were
// issued by a page that has since been replaced.
type RefID string

// NoRefID is the zero RefID. It is never current.
const NoRefID RefID = ""

func (r RefID) String() string {
	return string(r)
}
