package swim_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/swimapi/swim"
)

func TestMeetNormalizer(t *testing.T) {
	norm := swim.NewMeetNormalizer()

	Convey("Given raw meet names", t, func() {
		cases := map[string]string{
			"2025 National Winter Short-Course Swimming Championship": "National Winter SC",
			"301 Taichung Mayor Cup Aquatics Meet (Swimming Events)":  "Taichung Mayor Cup",
			"National Presidents Cup and Mizuno Age-Group Swimming Championship": "National Presidents Cup",
			"Tainan Mayor Cup Short-Course Swimming Championship":                "Tainan Mayor Cup SC",
			"Riverside Swimming Championship":                                    "Riverside",
			"Y Open": "Y Open",
			"":       "",
		}
		for in, want := range cases {
			So(norm.Normalize(in), ShouldEqual, want)
		}

		Convey("The generic suffix survives after the protected token", func() {
			So(norm.Normalize("City Spring Swimming Championship"),
				ShouldEqual, "City Spring Swimming Championship")
			So(norm.Normalize("2024 Spring Swimming Championship"),
				ShouldEqual, "Spring Swimming Championship")
		})

		Convey("Runs of whitespace collapse", func() {
			So(norm.Normalize("Tainan   Committee    Cup"), ShouldEqual, "Tainan Committee Cup")
		})

		Convey("Normalizing twice changes nothing", func() {
			inputs := []string{
				"2025 National Winter Short-Course Swimming Championship",
				"301 Taichung Mayor Cup Aquatics Meet (Swimming Events)",
				"2024 Spring Swimming Championship",
				"City Spring Swimming Championship",
				"Riverside Swimming Championship",
				"Y Open",
			}
			for _, in := range inputs {
				once := norm.Normalize(in)
				So(norm.Normalize(once), ShouldEqual, once)
			}
		})
	})
}

func TestIsShortCourseWinter(t *testing.T) {
	Convey("Short-course winter meets are flagged by marker substrings", t, func() {
		So(swim.IsShortCourseWinter("X Winter Short-Course Championship"), ShouldBeTrue)
		So(swim.IsShortCourseWinter("National Winter SC"), ShouldBeTrue)
		So(swim.IsShortCourseWinter("short-course winter invitational"), ShouldBeTrue)

		So(swim.IsShortCourseWinter("Y Open"), ShouldBeFalse)
		So(swim.IsShortCourseWinter("Tainan Mayor Cup"), ShouldBeFalse)
		// A short-course meet outside winter is still comparable.
		So(swim.IsShortCourseWinter("Summer Short-Course Invitational"), ShouldBeFalse)
	})
}
