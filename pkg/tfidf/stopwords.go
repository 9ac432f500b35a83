package tfidf

// English stopword list. Ranking quality only needs the common
// function words removed; the exact membership is not load-bearing.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "across": true, "after": true,
	"afterwards": true, "again": true, "against": true, "all": true,
	"almost": true, "alone": true, "along": true, "already": true,
	"also": true, "although": true, "always": true, "am": true,
	"among": true, "amongst": true, "an": true, "and": true, "another": true,
	"any": true, "anyhow": true, "anyone": true, "anything": true,
	"anyway": true, "anywhere": true, "are": true, "around": true,
	"as": true, "at": true, "back": true, "be": true, "became": true,
	"because": true, "become": true, "becomes": true, "becoming": true,
	"been": true, "before": true, "beforehand": true, "behind": true,
	"being": true, "below": true, "beside": true, "besides": true,
	"between": true, "beyond": true, "both": true, "bottom": true,
	"but": true, "by": true, "call": true, "can": true, "cannot": true,
	"could": true, "did": true, "do": true, "does": true, "done": true,
	"down": true, "due": true, "during": true, "each": true, "eg": true,
	"either": true, "else": true, "elsewhere": true, "empty": true,
	"enough": true, "etc": true, "even": true, "ever": true, "every": true,
	"everyone": true, "everything": true, "everywhere": true, "except": true,
	"few": true, "first": true, "for": true, "former": true, "formerly": true,
	"from": true, "front": true, "full": true, "further": true, "get": true,
	"give": true, "go": true, "had": true, "has": true, "have": true,
	"he": true, "hence": true, "her": true, "here": true, "hereafter": true,
	"hereby": true, "herein": true, "hereupon": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"however": true, "i": true, "ie": true, "if": true, "in": true,
	"indeed": true, "into": true, "is": true, "it": true, "its": true,
	"itself": true, "just": true, "last": true, "latter": true,
	"latterly": true, "least": true, "less": true, "ltd": true, "made": true,
	"many": true, "may": true, "me": true, "meanwhile": true, "might": true,
	"mine": true, "more": true, "moreover": true, "most": true,
	"mostly": true, "much": true, "must": true, "my": true, "myself": true,
	"namely": true, "neither": true, "never": true, "nevertheless": true,
	"next": true, "no": true, "nobody": true, "none": true, "noone": true,
	"nor": true, "not": true, "nothing": true, "now": true, "nowhere": true,
	"of": true, "off": true, "often": true, "on": true, "once": true,
	"one": true, "only": true, "onto": true, "or": true, "other": true,
	"others": true, "otherwise": true, "our": true, "ours": true,
	"ourselves": true, "out": true, "over": true, "own": true, "per": true,
	"perhaps": true, "please": true, "rather": true, "re": true,
	"same": true, "seem": true, "seemed": true, "seeming": true,
	"seems": true, "serious": true, "several": true, "she": true,
	"should": true, "since": true, "so": true, "some": true,
	"somehow": true, "someone": true, "something": true, "sometime": true,
	"sometimes": true, "somewhere": true, "still": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "them": true,
	"themselves": true, "then": true, "thence": true, "there": true,
	"thereafter": true, "thereby": true, "therefore": true, "therein": true,
	"thereupon": true, "these": true, "they": true, "this": true,
	"those": true, "though": true, "through": true, "throughout": true,
	"thru": true, "thus": true, "to": true, "together": true, "too": true,
	"top": true, "toward": true, "towards": true, "under": true,
	"until": true, "up": true, "upon": true, "us": true, "very": true,
	"via": true, "was": true, "we": true, "well": true, "were": true,
	"what": true, "whatever": true, "when": true, "whence": true,
	"whenever": true, "where": true, "whereafter": true, "whereas": true,
	"whereby": true, "wherein": true, "whereupon": true, "wherever": true,
	"whether": true, "which": true, "while": true, "whither": true,
	"who": true, "whoever": true, "whole": true, "whom": true, "whose": true,
	"why": true, "will": true, "with": true, "within": true, "without": true,
	"would": true, "yet": true, "you": true, "your": true, "yours": true,
	"yourself": true, "yourselves": true,
}
