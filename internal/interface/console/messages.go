package console

// 菜单与提示文本
const (
	MsgWelcome              = "=== Bookstore Database Admin Tools ==="
	MsgInvalidOption        = "Invalid Option"
	MsgNoBooksInStore       = "There are no books in the selected store"
	MsgBooksInStore         = "Books in store %s:"
	MsgBookAddedToStore     = "Book added to store."
	MsgBookRemovedFromStore = "Book removed from store"
	MsgBookAdded            = "Book added."
	MsgAuthorAdded          = "Author added"
	MsgBookEdited           = "Book edited"
	MsgAuthorEdited         = "Author edited"
	MsgBookRemoved          = "Book removed"
	MsgAuthorRemoved        = "Author removed"

	PromptSelectOption    = "Select an option: "
	PromptSelectStore     = "Select a store: "
	PromptSelectBook      = "Select a book: "
	PromptEnterAmount     = "Enter an amount: "
	PromptSelectAuthor    = "Select the author: "
	PromptSelectPublisher = "Select the publisher: "
	PromptSelectLanguage  = "Select the language: "
	PromptEnterTitle      = "Enter the title of the book: "
	PromptEnterISBN13     = "Enter the ISBN13 of the book: "
	PromptEnterPrice      = "Enter the price of the book: "
	PromptEnterPublished  = "Enter the date the book was published (yyyy-mm-dd): "
	PromptEnterFirstName  = "Enter the first name of the author: "
	PromptEnterLastName   = "Enter the last name of the author: "
	PromptEnterBirthdate  = "Enter the birthdate of the author (yyyy-mm-dd): "
	PromptPressAnyKey     = "Press any key to continue"
)

// dateLayout 日期输入输出格式 yyyy-mm-dd
const dateLayout = "2006-01-02"
