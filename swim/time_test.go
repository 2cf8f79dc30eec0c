package swim_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/swimapi/swim"
)

func TestParseSeconds(t *testing.T) {
	Convey("Given race-time strings", t, func() {
		Convey("Plain seconds pass through unchanged", func() {
			for in, want := range map[string]float64{
				"31.50": 31.50,
				"59.78": 59.78,
				"93.5":  93.5,
				"32":    32,
			} {
				got, ok := swim.ParseSeconds(in)
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, want)
			}
		})

		Convey("MM:SS.ss multiplies the left segment by 60", func() {
			got, ok := swim.ParseSeconds("1:33.50")
			So(ok, ShouldBeTrue)
			So(got, ShouldAlmostEqual, 93.50, 1e-9)

			got, ok = swim.ParseSeconds("1:02")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, 62)
		})

		Convey("HH:MM:SS.ss accumulates a second x60 step", func() {
			got, ok := swim.ParseSeconds("1:02:03")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, 3723)

			got, ok = swim.ParseSeconds("2:01:05.25")
			So(ok, ShouldBeTrue)
			So(got, ShouldAlmostEqual, 7265.25, 1e-9)
		})

		Convey("Whitespace around the value is tolerated", func() {
			got, ok := swim.ParseSeconds("  1:23.45 ")
			So(ok, ShouldBeTrue)
			So(got, ShouldAlmostEqual, 83.45, 1e-9)
		})

		Convey("Unparseable input is rejected", func() {
			for _, in := range []string{"", "   ", "abc", "DQ", "DNS", "::", "1:xx.2", "—"} {
				_, ok := swim.ParseSeconds(in)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("Zero and negative values parse but are never valid records", func() {
			got, ok := swim.ParseSeconds("0")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, 0)

			_, valid := swim.Record{Result: "0"}.Seconds()
			So(valid, ShouldBeFalse)
			_, valid = swim.Record{Result: "-5.1"}.Seconds()
			So(valid, ShouldBeFalse)
		})
	})
}
