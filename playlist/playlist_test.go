package playlist

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m3ugen/m3ugen/extract"
	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/m3ugen/m3ugen/network"
	"github.com/m3ugen/m3ugen/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

// pages serves canned HTML keyed by URL and records every fetch.
type pages struct {
	html    map[string]string
	fail    map[string]error
	fetched []string
}

func (p *pages) Fetch(url string) (string, error) {
	p.fetched = append(p.fetched, url)
	if err, ok := p.fail[url]; ok {
		return "", err
	}
	return p.html[url], nil
}

func TestFormatEntry(t *testing.T) {
	Convey("FormatEntry", t, func() {
		So(FormatEntry("Toffee 1", "https://x/a.m3u8"), ShouldEqual, "#EXTINF:-1, Toffee 1\nhttps://x/a.m3u8")
	})
}

func TestBuild(t *testing.T) {
	Convey("Given two sources where only the first has links", t, func() {
		a := source.Source{Name: "A", URL: "https://a.example"}
		b := source.Source{Name: "B", URL: "https://b.example"}
		fetcher := &pages{html: map[string]string{
			a.URL: `<a href="https://a.example/live/2">2</a> <a href="https://a.example/live/1">1</a>`,
			b.URL: `<p>nothing here</p>`,
		}}

		Convey("Links are sorted, then numbered from one", func() {
			entries, err := Build([]source.Source{a, b}, fetcher, extract.Default()).Get()
			So(err, ShouldBeNil)
			So(entries, ShouldResemble, []string{
				"#EXTM3U",
				"#EXTINF:-1, A 1\nhttps://a.example/live/1",
				"#EXTINF:-1, A 2\nhttps://a.example/live/2",
			})
		})

		Convey("A per-source extractor replaces the fallback", func() {
			custom := b.WithExtractor(extract.Func(func(string) []string {
				return []string{"L2", "L1"}
			}))
			entries, err := Build([]source.Source{custom}, fetcher, extract.Default()).Get()
			So(err, ShouldBeNil)
			So(entries, ShouldResemble, []string{
				"#EXTM3U",
				"#EXTINF:-1, B 1\nL1",
				"#EXTINF:-1, B 2\nL2",
			})
		})

		Convey("Sources are fetched in registry order", func() {
			Build([]source.Source{b, a}, fetcher, extract.Default())
			So(fetcher.fetched, ShouldResemble, []string{b.URL, a.URL})
		})
	})

	Convey("Given no sources", t, func() {
		entries, err := Build(nil, &pages{}, extract.Default()).Get()
		So(err, ShouldBeNil)
		So(entries, ShouldResemble, []string{"#EXTM3U"})
	})

	Convey("Given a failing second source", t, func() {
		sources := []source.Source{
			{Name: "One", URL: "https://1.example"},
			{Name: "Two", URL: "https://2.example"},
			{Name: "Three", URL: "https://3.example"},
		}
		cause := errors.New("connection refused")
		fetcher := &pages{
			html: map[string]string{"https://1.example": `<a href="https://1.example/live">x</a>`},
			fail: map[string]error{"https://2.example": cause},
		}

		result := Build(sources, fetcher, extract.Default())

		Convey("The build fails with the cause and the failing source", func() {
			So(result.IsError(), ShouldBeTrue)

			var srcErr *SourceError
			So(errors.As(result.Error(), &srcErr), ShouldBeTrue)
			So(srcErr.Source.Name, ShouldEqual, "Two")
			So(errors.Is(result.Error(), cause), ShouldBeTrue)
		})

		Convey("No entries are returned", func() {
			So(result.OrEmpty(), ShouldBeNil)
		})

		Convey("The remaining sources are not fetched", func() {
			So(fetcher.fetched, ShouldResemble, []string{"https://1.example", "https://2.example"})
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Entries are joined with one trailing newline", func() {
			So(Write([]string{"#EXTM3U", "#EXTINF:-1, X 1\nhttp://u"}, "/playlist.m3u"), ShouldBeNil)
			data := lo.Must(filesystem.API().ReadFile("/playlist.m3u"))
			So(string(data), ShouldEqual, "#EXTM3U\n#EXTINF:-1, X 1\nhttp://u\n")
		})

		Convey("A header-only playlist is still written", func() {
			So(Write([]string{Header}, "/empty.m3u"), ShouldBeNil)
			data := lo.Must(filesystem.API().ReadFile("/empty.m3u"))
			So(string(data), ShouldEqual, "#EXTM3U\n")
		})

		Convey("An existing file is overwritten", func() {
			So(filesystem.API().WriteFile("/playlist.m3u", []byte("old content that is longer\n"), 0o644), ShouldBeNil)
			So(Write([]string{Header}, "/playlist.m3u"), ShouldBeNil)
			data := lo.Must(filesystem.API().ReadFile("/playlist.m3u"))
			So(string(data), ShouldEqual, "#EXTM3U\n")
		})

		Convey("A read-only destination fails", func() {
			filesystem.SetReadOnly()
			So(Write([]string{Header}, "/playlist.m3u"), ShouldNotBeNil)
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given sources served over HTTP", t, func() {
		filesystem.SetMemMapFs()

		mux := http.NewServeMux()
		mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<a href="https://cdn.example/a.m3u8?x=1">a</a>`))
		})
		mux.HandleFunc("/down", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := &network.HTTPFetcher{Client: server.Client()}

		Convey("A successful run writes the playlist", func() {
			sources := []source.Source{{Name: "Ok", URL: server.URL + "/ok"}}
			n, err := Generate(sources, fetcher, extract.Default(), "/out.m3u")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			data := lo.Must(filesystem.API().ReadFile("/out.m3u"))
			So(string(data), ShouldEqual, "#EXTM3U\n#EXTINF:-1, Ok 1\nhttps://cdn.example/a.m3u8?x=1\n")
		})

		Convey("A failure on the second of three sources writes nothing", func() {
			sources := []source.Source{
				{Name: "First", URL: server.URL + "/ok"},
				{Name: "Second", URL: server.URL + "/down"},
				{Name: "Third", URL: server.URL + "/ok"},
			}
			_, err := Generate(sources, fetcher, extract.Default(), "/out.m3u")
			So(err, ShouldNotBeNil)

			var statusErr *network.StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.StatusCode, ShouldEqual, http.StatusBadGateway)

			So(lo.Must(filesystem.API().Exists("/out.m3u")), ShouldBeFalse)
		})
	})
}
