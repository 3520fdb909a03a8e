package broken

func Unfinished( {
