package stacktrace

import (
	"strings"
	"testing"
)

const deprecatedBox = "Error: \n" +
	"x UTSCallback 已过时，详情查看 https://uniapp.dcloud.net.cn/plugin/uts-plugin.html#%E5%B8%B8%E8%A7%81%E6%8A%A5%E9%94%99.\n" +
	"    ,-[uni_modules/uts-alert/utssdk/app-android/index.uts:29:1]\n" +
	"29 | \tinputET:EditText\n" +
	"30 | \tcallback:UTSCallback\n" +
	"    :           ^^^^^^^^^^^\n" +
	"31 |"

func TestParseBoxed(t *testing.T) {
	boxes := ParseBoxed(deprecatedBox+"\n"+deprecatedBox, false)
	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(boxes))
	}
	for i, b := range boxes {
		if b.File != "uni_modules/uts-alert/utssdk/app-android/index.uts" || b.Line != 29 || b.Column != 1 {
			t.Errorf("box %d: location %s:%d:%d", i, b.File, b.Line, b.Column)
		}
		if !strings.HasPrefix(b.Message, "UTSCallback 已过时") {
			t.Errorf("box %d: message %q", i, b.Message)
		}
		if strings.Contains(b.Message, "Error:") {
			t.Errorf("box %d: marker left in message %q", i, b.Message)
		}
		if b.CaretLine != 30 || b.CaretWidth != 11 {
			t.Errorf("box %d: caret at line %d width %d", i, b.CaretLine, b.CaretWidth)
		}
		if got := strings.Count(b.Code, "\n") + 1; got != 4 {
			t.Errorf("box %d: code has %d rows, want 4:\n%s", i, got, b.Code)
		}
	}
}

func TestParseBoxedCaretColumn(t *testing.T) {
	blob := "x bad call\n" +
		"  ,-[a.uts:1:1]\n" +
		"1 | \tfoo(bar)\n" +
		"  :     ^^^\n" +
		"  `----"
	tests := []struct {
		replaceTabs bool
		want        int
	}{
		// табуляция считается одной колонкой
		{true, 5},
		// табуляция шириной 4
		{false, 2},
	}
	for _, tt := range tests {
		boxes := ParseBoxed(blob, tt.replaceTabs)
		if len(boxes) != 1 {
			t.Fatalf("got %d boxes, want 1", len(boxes))
		}
		if boxes[0].CaretColumn != tt.want {
			t.Errorf("replaceTabs=%v: caret column %d, want %d", tt.replaceTabs, boxes[0].CaretColumn, tt.want)
		}
	}
}

func TestParseBoxedNoBoxes(t *testing.T) {
	if got := ParseBoxed("Error: something went wrong\nno box here", false); len(got) != 0 {
		t.Fatalf("expected no boxes, got %+v", got)
	}
}
