package extract

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlainText(t *testing.T) {
	Convey("PlainText", t, func() {
		Convey("Strips markup", func() {
			So(PlainText(`<html><body>hello</body></html>`), ShouldEqual, "hello")
		})

		Convey("Joins text nodes with a space", func() {
			So(PlainText(`<p>a</p><p>b</p>`), ShouldEqual, "a b")
		})

		Convey("Skips script and style bodies", func() {
			So(PlainText(`<p>a</p><script>var x = 1;</script><style>p{}</style><p>c</p>`), ShouldEqual, "a c")
		})

		Convey("Decodes entities", func() {
			So(PlainText(`<p>a &amp; b</p>`), ShouldEqual, "a & b")
		})

		Convey("Tolerates broken markup", func() {
			So(PlainText(`<div><p>open`), ShouldEqual, "open")
		})

		Convey("Empty input gives empty text", func() {
			So(PlainText(""), ShouldEqual, "")
		})
	})
}
