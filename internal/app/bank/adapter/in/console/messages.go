package console

// 選單選項
const (
	optionDeposit      = "1"
	optionWithdraw     = "2"
	optionTransfer     = "3"
	optionCheckBalance = "4"
	optionExit         = "5"
)

const menu = `Select an option:
1. Deposit
2. Withdraw
3. Transfer
4. Check Balance
5. Exit`

// 提示
const (
	promptDepositAccount  = "Enter the account number for deposit:"
	promptDepositAmount   = "Enter the amount to deposit:"
	promptWithdrawAccount = "Enter the account number for withdrawal:"
	promptWithdrawAmount  = "Enter the amount to withdraw:"
	promptTransferFrom    = "Enter the account number to transfer from:"
	promptTransferTo      = "Enter the account number to transfer to:"
	promptTransferAmount  = "Enter the amount to transfer:"
	promptCheckAccount    = "Enter the account number to check balance:"
)

// 訊息
const (
	msgWelcome              = "Welcome to the Simple Bank System!"
	msgGoodbye              = "Exiting the system. Goodbye!"
	msgInvalidOption        = "Invalid option, please try again."
	msgAccountNotFound      = "Account not found."
	msgSourceNotFound       = "Source account not found."
	msgDestinationNotFound  = "Destination account not found."
	msgInvalidAmount        = "Invalid amount. Please enter a valid number."
	msgDepositNotPositive   = "Deposit amount must be positive."
	msgWithdrawNotPositive  = "Withdrawal amount must be positive."
	msgTransferNotPositive  = "Transfer amount must be positive."
	msgInsufficientFunds    = "Insufficient funds."
	msgTransferInsufficient = "Insufficient funds for the transfer."
)
