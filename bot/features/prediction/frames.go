package prediction

// syncFrames is the fixed progress animation shown while a prediction is
// "computed". The first frame is sent as a new message; each following frame
// replaces the full text of that message.
var syncFrames = []string{
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓░░░░░░░░░░░] 15%",
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓▓░░░░░░░░░] 30%",
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓▓▓▓░░░░░░░] 45%",
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓▓▓▓▓▓░░░░░] 60%",
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓▓▓▓▓▓▓▓░░░] 80%",
	"📊 𝑪𝒉𝒆𝒄𝒌𝒊𝒏𝒈 𝑷𝒓𝒆𝒅𝒊𝒄𝒕𝒊𝒐𝒏𝒔 [▓▓▓▓▓▓▓▓▓▓▓] 100%",
}
