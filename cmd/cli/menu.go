package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	birthDateLayout = "02-01-2006"
	recordLayout    = "02-01-2006 15:04:05"
	menuText        = `
================ MENU ================
[c]	Criar Cliente
[n]	Criar Conta
[l]	Listar Contas
[d]	Depositar
[s]	Sacar
[e]	Extrato
[q]	Sair
=> `
)

// menu drives the ledger service from a line-oriented terminal session.
type menu struct {
	svc         *ledger.Service
	in          *bufio.Scanner
	out         io.Writer
	interactive bool

	ok    *color.Color
	fail  *color.Color
	title *color.Color
}

func newMenu(svc *ledger.Service, in io.Reader, out io.Writer, interactive bool) *menu {
	m := &menu{
		svc:         svc,
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		ok:          color.New(color.FgGreen),
		fail:        color.New(color.FgRed),
		title:       color.New(color.FgCyan, color.Bold),
	}
	if !interactive {
		m.ok.DisableColor()
		m.fail.DisableColor()
		m.title.DisableColor()
	}
	return m
}

// run loops over the menu until the user quits or input ends.
func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		option, ok := m.prompt(menuText)
		if !ok {
			return nil
		}
		switch strings.ToLower(option) {
		case "c":
			m.createClient(ctx)
		case "n":
			m.createAccount(ctx)
		case "l":
			m.listAccounts(ctx)
		case "d":
			m.post(ctx, "Informe o valor do depósito: R$ ", "Depósito realizado com sucesso!", m.svc.Deposit)
		case "s":
			m.post(ctx, "Informe o valor do saque: R$ ", "Saque realizado com sucesso!", m.svc.Withdraw)
		case "e":
			m.statement(ctx)
		case "q":
			fmt.Fprintln(m.out, "\nSaindo do sistema... Obrigado por usar nosso banco!")
			return nil
		default:
			m.failure("Operação inválida, por favor selecione novamente a operação desejada.")
		}
		if m.interactive {
			if _, ok := m.prompt("\nPressione Enter para continuar..."); !ok {
				return nil
			}
		}
	}
}

func (m *menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) success(msg string) {
	m.ok.Fprintf(m.out, "\n✅ %s\n", msg) //nolint:errcheck
}

func (m *menu) failure(msg string) {
	m.fail.Fprintf(m.out, "\n❌ %s\n", msg) //nolint:errcheck
}

// report prints the user-facing message of a ledger error.
func (m *menu) report(err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		m.failure("Operação falhou! Você não tem saldo suficiente.")
	case errors.Is(err, domain.ErrInvalidAmount):
		m.failure("Operação falhou! O valor informado é inválido.")
	case errors.Is(err, domain.ErrExceedsWithdrawalLimit):
		m.failure(fmt.Sprintf("Operação falhou! O valor do saque excede o limite de %s.",
			brl(m.svc.CheckingPolicy().Limit)))
	case errors.Is(err, domain.ErrDailyWithdrawalLimitExceeded):
		m.failure("Operação falhou! Número máximo de saques diários excedido.")
	case errors.Is(err, domain.ErrAccountNotOwned):
		m.failure("Operação falhou! A conta informada não pertence a este cliente.")
	case errors.Is(err, domain.ErrClientNotFound):
		m.failure("Cliente não encontrado!")
	case errors.Is(err, domain.ErrAccountNotFound):
		m.failure("Conta não encontrada!")
	case errors.Is(err, domain.ErrDuplicateTaxID):
		m.failure("Já existe cliente com este CPF!")
	case errors.Is(err, domain.ErrInvalidClient):
		m.failure("Dados do cliente inválidos.")
	default:
		m.failure("Operação falhou! " + err.Error())
	}
}

func (m *menu) createClient(ctx context.Context) {
	cpf, ok := m.prompt("Informe o CPF (somente números): ")
	if !ok {
		return
	}
	if _, err := m.svc.FindClientByTaxID(ctx, cpf); err == nil {
		m.report(domain.ErrDuplicateTaxID)
		return
	}
	name, _ := m.prompt("Informe o nome completo: ")
	rawBirth, _ := m.prompt("Informe a data de nascimento (dd-mm-aaaa): ")
	address, _ := m.prompt("Informe o endereço (logradouro, nro - bairro - cidade/sigla estado): ")

	birth, err := time.Parse(birthDateLayout, rawBirth)
	if err != nil {
		m.failure("Data de nascimento inválida. Use o formato dd-mm-aaaa.")
		return
	}
	if _, err := m.svc.CreateClient(ctx, ledger.NewClientInput{
		TaxID:     cpf,
		Name:      name,
		BirthDate: birth,
		Address:   address,
	}); err != nil {
		m.report(err)
		return
	}
	m.success("Cliente criado com sucesso!")
}

func (m *menu) createAccount(ctx context.Context) {
	cpf, ok := m.prompt("Informe o CPF do cliente: ")
	if !ok {
		return
	}
	acc, err := m.svc.OpenAccount(ctx, cpf)
	if err != nil {
		m.report(err)
		return
	}
	m.success("Conta criada com sucesso! " + acc.String())
}

func (m *menu) listAccounts(ctx context.Context) {
	accounts, err := m.svc.ListAccounts(ctx)
	if err != nil {
		m.report(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "\nNenhuma conta cadastrada.")
		return
	}
	m.title.Fprintln(m.out, "\n================ LISTA DE CONTAS ================") //nolint:errcheck
	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"Agência", "C/C", "Titular", "Saldo"})
	for _, acc := range accounts {
		table.Append([]string{
			acc.Branch,
			strconv.Itoa(acc.Number),
			acc.Holder().HolderName(),
			brl(acc.Balance()),
		})
	}
	table.Render()
}

// selectAccount asks which account to use when the client has more than one.
func (m *menu) selectAccount(c *client.Client) (int, bool) {
	accounts := c.Accounts()
	switch len(accounts) {
	case 0:
		m.failure("Cliente não possui conta!")
		return 0, false
	case 1:
		return accounts[0].Number, true
	}
	fmt.Fprintln(m.out, "\nEste cliente possui mais de uma conta. Por favor, selecione uma:")
	for i, acc := range accounts {
		fmt.Fprintf(m.out, "  [%d] Agência: %s, C/C: %d\n", i+1, acc.Branch, acc.Number)
	}
	raw, ok := m.prompt("Digite o número da opção desejada: ")
	if !ok {
		return 0, false
	}
	choice, err := strconv.Atoi(raw)
	if err != nil {
		m.failure("Entrada inválida. Por favor, digite um número.")
		return 0, false
	}
	if choice < 1 || choice > len(accounts) {
		m.failure("Opção inválida. Tente novamente.")
		return 0, false
	}
	return accounts[choice-1].Number, true
}

// lookup resolves the client and one of its accounts from the prompts.
func (m *menu) lookup(ctx context.Context) (string, int, bool) {
	cpf, ok := m.prompt("Informe o CPF do cliente: ")
	if !ok {
		return "", 0, false
	}
	c, err := m.svc.FindClientByTaxID(ctx, cpf)
	if err != nil {
		m.report(err)
		return "", 0, false
	}
	number, ok := m.selectAccount(c)
	return cpf, number, ok
}

func (m *menu) post(
	ctx context.Context,
	amountPrompt, okMsg string,
	apply func(ctx context.Context, taxID string, number int, amount money.Money) (money.Money, error),
) {
	cpf, number, ok := m.lookup(ctx)
	if !ok {
		return
	}
	raw, ok := m.prompt(amountPrompt)
	if !ok {
		return
	}
	amount, err := m.svc.ParseAmount(raw)
	if err != nil {
		m.failure("Entrada inválida. Por favor, informe um valor numérico.")
		return
	}
	if _, err := apply(ctx, cpf, number, amount); err != nil {
		m.report(err)
		return
	}
	m.success(okMsg)
}

func (m *menu) statement(ctx context.Context) {
	cpf, number, ok := m.lookup(ctx)
	if !ok {
		return
	}
	st, err := m.svc.Statement(ctx, cpf, number)
	if err != nil {
		m.report(err)
		return
	}
	m.title.Fprintln(m.out, "\n================ EXTRATO ================") //nolint:errcheck
	if st.IsEmpty() {
		fmt.Fprintln(m.out, "Não foram realizadas movimentações.")
	} else {
		table := tablewriter.NewWriter(m.out)
		table.SetHeader([]string{"Data", "Tipo", "Valor"})
		for _, r := range st.Records {
			table.Append([]string{r.Timestamp.Format(recordLayout), kindLabel(r.Kind), brl(r.Amount)})
		}
		table.Render()
	}
	fmt.Fprintf(m.out, "\nSaldo:\t\t%s\n", brl(st.Balance))
	fmt.Fprintln(m.out, "==========================================")
}

func kindLabel(k account.Kind) string {
	switch k {
	case account.KindDeposit:
		return "Depósito"
	case account.KindWithdrawal:
		return "Saque"
	default:
		return string(k)
	}
}

func brl(m money.Money) string {
	return fmt.Sprintf("R$ %.2f", m.AmountFloat())
}
