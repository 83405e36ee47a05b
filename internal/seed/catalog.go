package seed

var firstNames = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Ivy", "Jack", "Karen", "Louis", "Maria", "Nathan", "Olivia", "Peter",
	"Quinn", "Rachel", "Steve", "Tina", "Victor", "Wendy", "Xavier", "Yvonne", "Zack",
}

var lastNames = []string{
	"Anderson", "Brown", "Davis", "Evans", "Foster", "Garcia", "Harris", "Jackson",
	"Johnson", "King", "Lee", "Miller", "Nelson", "Oliver", "Parker", "Quinn",
	"Roberts", "Smith", "Taylor", "Underwood", "Valdez", "Wilson", "Young", "Zhang",
}

var statusMessages = []string{
	"Available", "Busy with work", "In a meeting", "On vacation 🏖️",
	"Coffee lover ☕", "Gym time 💪", "Reading 📚", "Coding 💻",
	"Happy Friday! 🎉", "Weekend vibes ✨", "Love coffee", "Always learning",
	"Working from home", "Out for lunch", "Be right back", "Do not disturb",
}

// messageTemplates may reference {name} (another participant's first name)
// and {time} (an hour of the working day).
var messageTemplates = []string{
	"Hey {name}! How are you doing?",
	"Good morning everyone!",
	"Has anyone seen the latest updates?",
	"Meeting at {time} today",
	"Great work on the project!",
	"Can we reschedule the call?",
	"Thanks for the help!",
	"Looking forward to our discussion",
	"Just finished the task",
	"Need some feedback on this",
	"Perfect! Let's proceed",
	"I agree with your suggestion",
	"Let me check and get back to you",
	"Sounds like a plan",
	"Awesome! 🎉",
	"That makes sense",
	"I have a question about...",
	"Could you clarify this?",
	"No worries, take your time",
	"Excellent point!",
}

var emojis = []string{"👍", "❤️", "😊", "🎉", "💪", "☕", "🚀", "✅", "🔥", "💯"}

var groupNames = []string{
	"Development Team", "Coffee Lovers ☕", "Weekend Plans", "Book Club 📚",
	"Fitness Squad 💪", "Movie Night 🎬", "Travel Enthusiasts ✈️",
	"Tech Talk", "Random Chat", "Project Alpha", "Daily Standup",
	"Lunch Group", "Gaming Squad 🎮", "Music Lovers 🎵",
}

var meetingTitles = []string{
	"Daily Standup", "Sprint Planning", "Code Review", "Team Retrospective",
	"Coffee Chat", "Project Kickoff", "Client Meeting", "Design Review",
	"Architecture Discussion", "Product Demo", "Weekly Sync", "All Hands",
}

var connectionQualities = []string{"excellent", "good", "poor"}

var messageTypes = []weighted[MessageType]{
	{MessageText, 80},
	{MessageImage, 10},
	{MessageFile, 5},
	{MessageAudio, 4},
	{MessageSystem, 1},
}

var meetingStates = []weighted[MeetingState]{
	{MeetingUpcoming, 30},
	{MeetingActive, 20},
	{MeetingCompleted, 50},
}
