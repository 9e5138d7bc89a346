// Package playlist builds M3U playlists from scraped sources and writes them to disk.
package playlist

import "fmt"

// Header is the first line of every M3U playlist.
const Header = "#EXTM3U"

// FormatEntry renders the two-line record for one stream.
func FormatEntry(name, url string) string {
	return fmt.Sprintf("#EXTINF:-1, %s\n%s", name, url)
}
