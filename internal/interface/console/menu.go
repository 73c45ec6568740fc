package console

// MenuChoice is one of the five numbered menu commands.
type MenuChoice int

const (
	MenuAdd MenuChoice = iota + 1
	MenuViewAll
	MenuCalcAverage
	MenuPassFail
	MenuExit
)

// String returns the operation name used in logs.
func (m MenuChoice) String() string {
	switch m {
	case MenuAdd:
		return "add_student"
	case MenuViewAll:
		return "view_all"
	case MenuCalcAverage:
		return "calc_average"
	case MenuPassFail:
		return "pass_fail"
	case MenuExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseMenuChoice parses a menu line. Anything outside 1..5 is rejected.
func ParseMenuChoice(line string) (MenuChoice, bool) {
	v, ok := ParseInt(line)
	if !ok || v < int(MenuAdd) || v > int(MenuExit) {
		return 0, false
	}
	return MenuChoice(v), true
}
