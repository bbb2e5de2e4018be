// internal/question/catalog.go
package question

// DefaultPosts is the built-in catalog used when no external source is
// configured. It is intentionally small but covers every shape round
// selection has to handle: multi-set posts, single-set posts, and one
// NSFW-flagged post.
func DefaultPosts() []Post {
	return []Post{
		{
			PostID: "post_1",
			Title:  "What's the most ridiculous thing you believed as a child?",
			Score:  15420,
			Author: "curious_poster",
			CommentSets: [][]Comment{
				{
					{Body: "That swallowing a watermelon seed meant one would grow in my stomach. I avoided watermelon for years.", Score: 8934, Author: "seed_survivor", IsTopComment: true},
					{Body: "That chocolate milk came from brown cows. Made perfect sense at five.", Score: 3421, Author: "dairy_truther", IsTopComment: false},
					{Body: "That teachers lived at school. Seeing mine at the grocery store broke my brain.", Score: 1876, Author: "hall_monitor", IsTopComment: false},
				},
				{
					{Body: "That adults had all the answers and never made mistakes.", Score: 7234, Author: "reality_check", IsTopComment: true},
					{Body: "That quicksand would be a much bigger problem in adult life than it turned out to be.", Score: 3890, Author: "prepared_kid", IsTopComment: false},
					{Body: "That if the wind changed while I made a funny face, I'd be stuck like that.", Score: 2345, Author: "windproof", IsTopComment: false},
				},
			},
		},
		{
			PostID: "post_2",
			Title:  "What's a skill that's surprisingly easy to learn but looks impressive?",
			Score:  23156,
			Author: "skill_seeker",
			CommentSets: [][]Comment{
				{
					{Body: "Juggling. The basics take about thirty minutes, but everyone assumes it took years.", Score: 12453, Author: "three_balls", IsTopComment: true},
					{Body: "Basic card tricks. Three simple tricks and people think you're a magician.", Score: 4321, Author: "sleight_hand", IsTopComment: false},
					{Body: "Solving a Rubik's cube. It's memorized algorithms, not genius.", Score: 3876, Author: "cube_grinder", IsTopComment: false},
				},
				{
					{Body: "Lock picking. Most basic locks open after twenty minutes of practice.", Score: 9876, Author: "pin_tumbler", IsTopComment: true},
					{Body: "Touch typing. Type without looking and people assume you're a wizard.", Score: 4567, Author: "home_row", IsTopComment: false},
					{Body: "Proper searing and seasoning. Two techniques and you're suddenly a chef.", Score: 5234, Author: "cast_iron", IsTopComment: false},
				},
			},
		},
		{
			PostID: "post_3",
			Title:  "What sounds like a conspiracy theory but is actually true?",
			Score:  31245,
			Author: "truth_seeker",
			CommentSets: [][]Comment{
				{
					{Body: "The government really did run mind control experiments on unwitting citizens. Declassified and everything.", Score: 18234, Author: "archive_diver", IsTopComment: true},
					{Body: "Tobacco companies knew about cancer decades before the public did and covered it up.", Score: 9876, Author: "paper_trail", IsTopComment: false},
					{Body: "The sugar industry paid scientists to blame fat for heart disease instead.", Score: 7543, Author: "label_reader", IsTopComment: false},
					{Body: "Oil companies' own scientists predicted climate change in the seventies while the PR teams denied it.", Score: 6234, Author: "old_memos", IsTopComment: false},
				},
			},
		},
		{
			PostID: "post_4",
			Title:  "What's the weirdest thing you've seen someone do in public?",
			Score:  19876,
			Author: "people_watcher",
			CommentSets: [][]Comment{
				{
					{Body: "Guy at the airport dry-brushing his teeth at the gate for ten straight minutes. No water.", Score: 11234, Author: "gate_b12", IsTopComment: true},
					{Body: "Woman on the subway knitting a sweater for the pet chicken in the carrier next to her.", Score: 5678, Author: "six_train", IsTopComment: false},
					{Body: "A man smelling every single banana in the produce section. Took fifteen minutes.", Score: 6234, Author: "aisle_four", IsTopComment: false},
				},
			},
		},
		{
			PostID: "post_5",
			Title:  "What's the worst dating advice you've ever received?",
			Score:  18234,
			Author: "swipe_fatigue",
			IsNSFW: true,
			CommentSets: [][]Comment{
				{
					{Body: "'Just be yourself.' Terrible when yourself is an anxious mess who overshares about conspiracy theories.", Score: 11234, Author: "spoon_collector", IsTopComment: true},
					{Body: "'Play hard to get.' Ignored someone I liked for weeks. They moved on. Shocking.", Score: 7890, Author: "mixed_signals", IsTopComment: false},
					{Body: "'Never text first.' Great way to never talk to anyone again.", Score: 6543, Author: "read_receipt", IsTopComment: false},
				},
			},
		},
	}
}
