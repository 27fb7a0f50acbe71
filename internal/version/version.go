package version

var (
	AppName        = "irchumanizer"
	AppDescription = "IRC persona bot that chats like an inattentive human"
	AppVersion     = "dev"
)
