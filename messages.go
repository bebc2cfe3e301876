package walkguide

import (
	"fmt"

	"github.com/swdee/go-walkguide/parser"
	"github.com/swdee/go-walkguide/spatial"
)

// Language selects the language decision messages are written in
type Language int

const (
	English Language = iota + 1
	Chinese
)

func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Chinese:
		return "zh"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// ParseLanguage returns the Language for the given code
func ParseLanguage(code string) (Language, error) {
	switch code {
	case "en", "english":
		return English, nil
	case "zh", "chinese":
		return Chinese, nil
	default:
		return 0, fmt.Errorf("unsupported language %q", code)
	}
}

// messageSet holds the message templates of one language.  Templates taking
// a position use the argument order position, class, distance
type messageSet struct {
	noWalkArea    string
	clearPath     string
	noMajorThreat string
	lowThreat     string
	stopAhead     string
	veerRight     string
	veerLeft      string
	slowNear      string
	edgeNear      string
	slowMid       string
	edgeMid       string
	notable       string

	classes   map[string]string
	positions map[spatial.Position]string
	distances map[spatial.Distance]string
}

var messages = map[Language]messageSet{
	English: {
		noWalkArea:    "No sufficient walk area detected, please stop!",
		clearPath:     "Path ahead is clear, proceed straight.",
		noMajorThreat: "No obvious obstacles ahead, proceed carefully and stay observant.",
		lowThreat:     "Path is mostly clear, keep an eye on your surroundings.",
		stopAhead:     "Stop! %s directly ahead at close range!",
		veerRight:     "Warning! %s close ahead on the left, veer right.",
		veerLeft:      "Warning! %s close ahead on the right, veer left.",
		slowNear:      "Warning! %s close ahead, slow down!",
		edgeNear:      "Caution! %[2]s close by at the %[1]s edge.",
		slowMid:       "Slow down, %[2]s ahead on the %[1]s.",
		edgeMid:       "Caution, %[2]s at the %[1]s edge.",
		notable:       "Stay alert, %[2]s detected in the %[1]s area ahead (%[3]s).",
		positions: map[spatial.Position]string{
			spatial.Left:   "left",
			spatial.Center: "center",
			spatial.Right:  "right",
		},
		distances: map[spatial.Distance]string{
			spatial.Near: "near",
			spatial.Mid:  "mid range",
			spatial.Far:  "far",
		},
	},
	Chinese: {
		noWalkArea:    "没有检测到足够的可行走区域，请停止！",
		clearPath:     "前方安全，请直行。",
		noMajorThreat: "前方暂无明显障碍，请谨慎前行，注意观察。",
		lowThreat:     "路况基本清晰，但请注意观察周围环境。",
		stopAhead:     "停止！正前方近距离有%s！",
		veerRight:     "注意！左前方近处有%s，建议向右微调。",
		veerLeft:      "注意！右前方近处有%s，建议向左微调。",
		slowNear:      "注意！正前方近处有%s，请减速！",
		edgeNear:      "注意！%[1]s侧边缘近处有%[2]s。",
		slowMid:       "注意前方%[1]s有%[2]s，请减速慢行。",
		edgeMid:       "注意%[1]s侧边缘有%[2]s。",
		notable:       "请注意环境，前方%[1]s区域检测到%[2]s (%[3]s)。",
		classes: map[string]string{
			parser.ClassObstacle: "障碍物",
			parser.ClassHuman:    "行人",
			parser.ClassWalkArea: "可行走区域",
		},
		positions: map[spatial.Position]string{
			spatial.Left:   "左",
			spatial.Center: "中",
			spatial.Right:  "右",
		},
		distances: map[spatial.Distance]string{
			spatial.Near: "近",
			spatial.Mid:  "中",
			spatial.Far:  "远",
		},
	},
}

// className returns the display name of an object class
func (l Language) className(class string) string {

	if name, ok := messages[l].classes[class]; ok {
		return name
	}

	return class
}

// positionName returns the display name of a position
func (l Language) positionName(p spatial.Position) string {

	if name, ok := messages[l].positions[p]; ok {
		return name
	}

	return p.String()
}

// distanceName returns the display name of a distance
func (l Language) distanceName(d spatial.Distance) string {

	if name, ok := messages[l].distances[d]; ok {
		return name
	}

	return d.String()
}
