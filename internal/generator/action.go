package generator

import (
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

type actionKey struct {
	theme    domain.Theme
	category string
}

// Category-specific action steps. Every step is an imperative scoped to today
// or tomorrow with an observable finish line. Control steps and goal steps are
// phrased as a repeating system.
var actionTemplates = map[actionKey]string{
	{domain.ThemeControl, "goals"}:                     "Tomorrow morning, set a 25-minute timer and work only on the smallest next step; mark an X on a calendar when it rings and repeat at the same time every day.",
	{domain.ThemeSmallPart, "goals"}:                   "Tomorrow, pick one 10-minute piece of the goal, schedule it at the same time every day this week, and mark an X on a calendar each time it is done.",
	{domain.ThemeControl, "identity"}:                  "Tomorrow, do one 10-minute action the person you want to be would do, log it as a tally mark, and repeat it every day this week.",
	{domain.ThemeGrayAreas, "identity"}:                "Today, write down three things you handled well this week next to the setback, and read all four lines aloud before bed.",
	{domain.ThemeSmallPart, "identity"}:                "Today, list five roles you play besides this one, and check each off as you name one thing you did well in it.",
	{domain.ThemeControl, "relationships"}:             "Tomorrow, send one check-in message to someone you care about and mark it done in your notes; repeat with a new person every day this week.",
	{domain.ThemeGrayAreas, "relationships"}:           "Today, write one thing the other person got right and one thing you would change, then have a 10-minute honest conversation about it by tomorrow evening.",
	{domain.ThemeSmallPart, "relationships"}:           "Today, send one message to a friend who makes you feel good, and count it as done the moment it is sent.",
	{domain.ThemeTemporary, "relationships"}:           "Today, plan one small thing to look forward to this week with someone you trust, and put it in your calendar before bed.",
	{domain.ThemeControl, "work"}:                      "Tomorrow, spend 20 minutes improving one point from the feedback before lunch, note the change, and repeat with the next point every workday.",
	{domain.ThemeGrayAreas, "work"}:                    "Today, write one sentence on what the feedback got right and one on what it missed, and finish both before you log off.",
	{domain.ThemeTemporary, "work"}:                    "Today, spend 20 minutes on one step toward your next option, such as updating one section of your CV, and check it off once it is saved.",
	{domain.ThemeControl, "health"}:                    "Tomorrow, take a 15-minute walk at the same time as today, tick it off on a calendar, and repeat every day this week.",
	{domain.ThemeTemporary, "health"}:                  "Today, drink one extra glass of water and get to bed 15 minutes earlier, and tick both off before you sleep.",
	{domain.ThemeSmallPart, "comparison"}:              "Today, mute one account that leaves you feeling behind and write down one thing you do better than last month.",
	{domain.ThemeGrayAreas, "comparison"}:              "Today, write down one way you are ahead of where you were a year ago, and read it back once before bed.",
	{domain.ThemeControl, "uncertainty"}:               "Tomorrow, set a 10-minute worry window at the same time every day, write every worry down, and circle one you can act on.",
	{domain.ThemeTemporary, "uncertainty"}:             "Today, write your worry on paper, circle the one part you can act on, and spend 10 minutes on it before bed.",
	{domain.ThemeTemporary, "loss"}:                    "Today, do one 10-minute act of care for yourself, like a walk or a call to a friend, and note it in your phone when it is done.",
	{domain.ThemeSmallPart, "loss"}:                    "Today, write down one memory you want to keep and one person you can lean on, and send that person a message.",
	{domain.ThemeControl, "money"}:                     "Tomorrow, write down every purchase you make and total them before bed; repeat every day for a week.",
	{domain.ThemeGrayAreas, "money"}:                   "Today, list one money habit that is working next to one that is not, and move 5 dollars to savings before bed.",
	{domain.ThemeSmallPart, "embarrassment"}:           "Today, write down three times you saw someone else stumble that you have already forgotten, and stop once the third is on paper.",
	{domain.ThemeTemporary, "embarrassment"}:           "Today, set a 5-minute timer to replay the moment once, then close the notebook and do one unrelated task to completion.",
	{domain.ThemeGrayAreas, "perfectionism"}:           "Today, set a 30-minute timer, finish a good-enough draft, and save or send it when the timer ends.",
	{domain.ThemeControl, "perfectionism"}:             "Tomorrow, ship one good-enough piece of work within 30 minutes, then repeat the 30-minute rule every day this week.",
	{domain.ThemeControl, "general problem-framing"}:   "Tomorrow morning, spend 15 minutes on the one piece you control, tick it off on a calendar, and repeat at the same time every day.",
	{domain.ThemeSmallPart, "general problem-framing"}: "Today, list three parts of your life that are going fine, and tick each one off once you have named it.",
	{domain.ThemeGrayAreas, "general problem-framing"}: "Today, write down one thing that is working next to the thing that is hard, and read both lines back before bed.",
}

// Defaults cover any theme and category combination not listed above.
var actionDefaults = map[domain.Theme]string{
	domain.ThemeControl:   "Tomorrow morning, set a 15-minute timer and work only on the part you control; check it off on a calendar and repeat at the same time every day.",
	domain.ThemeGrayAreas: "Today, write down two things that went right alongside the one that went wrong, and check that all three are on the page before bed.",
	domain.ThemeSmallPart: "Today, list three parts of your life that are going fine, and tick each one off once you have named it.",
	domain.ThemeTemporary: "Today, write one sentence about how you expect to see this in a month, and read it back once before bed.",
}

const goalSystemAction = "Tomorrow, pick one 10-minute step toward the goal, schedule it at the same time every day, and mark an X on a calendar each time it is done."

// GenerateAction returns exactly one schedulable, measurable action step.
func GenerateAction(theme domain.Theme, category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if a, ok := actionTemplates[actionKey{theme, key}]; ok {
		return a
	}
	if isGoalCategory(key) && theme != domain.ThemeControl {
		return goalSystemAction
	}
	if a, ok := actionDefaults[theme]; ok {
		return a
	}
	return actionDefaults[domain.ThemeControl]
}

func isGoalCategory(category string) bool {
	for _, w := range []string{"goal", "habit", "resolution"} {
		if strings.Contains(category, w) {
			return true
		}
	}
	return false
}
