package textproc

// Base stopword lists per language. These mirror the standard NLTK corpus
// lists so results stay comparable with other tooling in the team.

var baseEnglishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan",
	"shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't",
	"won", "won't", "wouldn", "wouldn't",
}

// customEnglishStopwords extends the base list with high-frequency words
// that showed up as noise in headline corpora.
var customEnglishStopwords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have",
	"i", "it", "for", "not", "on", "with", "he", "as", "you",
	"do", "at", "this", "but", "his", "by", "from", "up", "about",
	"into", "through", "during", "after", "above", "below", "between",
}

var basePortugueseStopwords = []string{
	"de", "a", "o", "que", "e", "é", "do", "da", "em", "um", "uma",
	"para", "com", "não", "os", "no", "se", "na", "por", "mais",
	"as", "dos", "como", "mas", "foi", "ao", "ele", "das", "tem",
	"à", "seu", "sua", "ou", "ser", "quando", "muito", "há", "nos",
	"já", "está", "eu", "também", "só", "pelo", "pela", "até",
	"isso", "ela", "entre", "era", "depois", "sem", "mesmo", "aos",
	"ter", "seus", "quem", "nas", "me", "esse", "eles", "estão",
	"você", "tinha", "foram", "essa", "num", "nem", "suas", "meu",
	"às", "minha", "têm", "numa", "pelos", "elas", "havia", "seja",
	"qual", "será", "nós", "tenho", "lhe", "deles", "essas", "esses",
	"pelas", "este", "fosse", "dele", "tu", "te", "vocês", "vos",
	"lhes", "meus", "minhas", "teu", "tua", "teus", "tuas", "nosso",
	"nossa", "nossos", "nossas", "dela", "delas", "esta", "estes",
	"estas", "aquele", "aquela", "aqueles", "aquelas", "isto", "aquilo",
	"estou", "estamos", "estive", "esteve", "estivemos",
	"estiveram", "estava", "estávamos", "estavam", "estivera", "estivéramos",
	"esteja", "estejamos", "estejam", "estivesse", "estivéssemos",
	"estivessem", "estiver", "estivermos", "estiverem", "hei",
	"havemos", "hão", "houve", "houvemos", "houveram", "houvera",
	"houvéramos", "haja", "hajamos", "hajam", "houvesse", "houvéssemos",
	"houvessem", "houver", "houvermos", "houverem", "houverei", "houverá",
	"houveremos", "houverão", "houveria", "houveríamos", "houveriam",
	"sou", "somos", "são", "éramos", "eram", "fui",
	"fomos", "fora", "fôramos", "sejamos", "sejam",
	"fôssemos", "fossem", "for", "formos", "forem", "serei",
	"seremos", "serão", "seria", "seríamos", "seriam",
	"temos", "tém", "tínhamos", "tinham", "tive", "teve",
	"tivemos", "tiveram", "tivera", "tivéramos", "tenha", "tenhamos",
	"tenham", "tivesse", "tivéssemos", "tivessem", "tiver", "tivermos",
	"tiverem", "terei", "terá", "teremos", "terão", "teria", "teríamos",
	"teriam",
}

var customPortugueseStopwords = []string{
	"de", "a", "o", "que", "e", "é", "do", "da", "em", "um",
	"para", "com", "não", "uma", "os", "no", "se", "na", "por",
}
