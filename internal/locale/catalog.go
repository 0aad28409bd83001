// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import "golang.org/x/text/language"

// catalog holds every UI string per supported locale. Keys follow
// page.element naming.
var catalog = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		"signin.title":          "Faça seu logon",
		"signin.email":          "E-mail",
		"signin.password":       "Senha",
		"signin.submit":         "Entrar",
		"signin.forgot":         "Esqueci minha senha",
		"signin.create":         "Criar conta",
		"signin.error.title":    "Erro na autenticação",
		"signin.error.desc":     "Ocorreu um erro ao fazer login, cheque as credenciais.",
		"signup.title":          "Faça seu cadastro",
		"signup.name":           "Nome",
		"signup.submit":         "Cadastrar",
		"signup.back":           "Voltar para logon",
		"signup.success.title":  "Cadastro realizado!",
		"signup.success.desc":   "Você já pode fazer seu logon no GoBarber!",
		"signup.error.title":    "Erro no cadastro",
		"signup.error.desc":     "Ocorreu um erro ao fazer cadastro, tente novamente.",
		"forgot.title":          "Recuperar senha",
		"forgot.submit":         "Recuperar",
		"forgot.back":           "Voltar ao logon",
		"forgot.success.title":  "E-mail de recuperação enviado",
		"forgot.success.desc":   "Enviamos um e-mail para confirmar a recuperação de senha, cheque sua caixa de entrada.",
		"forgot.error.title":    "Erro na recuperação de senha",
		"forgot.error.desc":     "Ocorreu um erro ao tentar realizar a recuperação de senha, tente novamente.",
		"reset.title":           "Resetar senha",
		"reset.password":        "Nova senha",
		"reset.confirmation":    "Confirmação da senha",
		"reset.submit":          "Alterar senha",
		"reset.error.title":     "Erro ao resetar senha",
		"reset.error.desc":      "Ocorreu um erro ao resetar sua senha, tente novamente.",
		"profile.title":         "Meu perfil",
		"profile.name":          "Nome",
		"profile.email":         "E-mail",
		"profile.old_password":  "Senha atual",
		"profile.new_password":  "Nova senha",
		"profile.confirmation":  "Confirmar senha",
		"profile.avatar":        "Caminho do avatar",
		"profile.submit":        "Confirmar mudanças",
		"profile.success.title": "Perfil atualizado!",
		"profile.success.desc":  "Suas informações do perfil foram atualizadas com sucesso!",
		"profile.error.title":   "Erro na atualização",
		"profile.error.desc":    "Ocorreu um erro ao atualizar perfil, tente novamente.",
		"avatar.success.title":  "Avatar atualizado!",
		"avatar.error.title":    "Erro ao atualizar avatar",
		"dashboard.title":       "Horários agendados",
		"dashboard.welcome":     "Bem-vindo,",
		"dashboard.hint":        "p: perfil • l: idioma • ctrl+s: sair • q: fechar",
		"common.busy":           "Enviando...",
		"validate.name":         "Nome obrigatório",
		"validate.email":        "E-mail obrigatório",
		"validate.email_fmt":    "Digite um e-mail válido",
		"validate.password":     "Senha obrigatória",
		"validate.password_min": "No mínimo 6 dígitos",
		"validate.required":     "Campo obrigatório",
		"validate.confirmation": "Confirmação incorreta",
	},
	language.AmericanEnglish: {
		"signin.title":          "Sign in",
		"signin.email":          "E-mail",
		"signin.password":       "Password",
		"signin.submit":         "Sign in",
		"signin.forgot":         "Forgot my password",
		"signin.create":         "Create account",
		"signin.error.title":    "Authentication error",
		"signin.error.desc":     "Sign-in failed, check your credentials.",
		"signup.title":          "Create your account",
		"signup.name":           "Name",
		"signup.submit":         "Sign up",
		"signup.back":           "Back to sign-in",
		"signup.success.title":  "Account created!",
		"signup.success.desc":   "You can now sign in to GoBarber!",
		"signup.error.title":    "Registration error",
		"signup.error.desc":     "Something went wrong creating your account, try again.",
		"forgot.title":          "Recover password",
		"forgot.submit":         "Recover",
		"forgot.back":           "Back to sign-in",
		"forgot.success.title":  "Recovery e-mail sent",
		"forgot.success.desc":   "We sent an e-mail to confirm your password recovery, check your inbox.",
		"forgot.error.title":    "Password recovery error",
		"forgot.error.desc":     "Something went wrong recovering your password, try again.",
		"reset.title":           "Reset password",
		"reset.password":        "New password",
		"reset.confirmation":    "Password confirmation",
		"reset.submit":          "Change password",
		"reset.error.title":     "Password reset error",
		"reset.error.desc":      "Something went wrong resetting your password, try again.",
		"profile.title":         "My profile",
		"profile.name":          "Name",
		"profile.email":         "E-mail",
		"profile.old_password":  "Current password",
		"profile.new_password":  "New password",
		"profile.confirmation":  "Confirm password",
		"profile.avatar":        "Avatar file path",
		"profile.submit":        "Confirm changes",
		"profile.success.title": "Profile updated!",
		"profile.success.desc":  "Your profile information was updated successfully!",
		"profile.error.title":   "Update error",
		"profile.error.desc":    "Something went wrong updating your profile, try again.",
		"avatar.success.title":  "Avatar updated!",
		"avatar.error.title":    "Avatar update error",
		"dashboard.title":       "Scheduled appointments",
		"dashboard.welcome":     "Welcome,",
		"dashboard.hint":        "p: profile • l: language • ctrl+s: sign out • q: quit",
		"common.busy":           "Sending...",
		"validate.name":         "Name is required",
		"validate.email":        "E-mail is required",
		"validate.email_fmt":    "Enter a valid e-mail",
		"validate.password":     "Password is required",
		"validate.password_min": "At least 6 characters",
		"validate.required":     "Required field",
		"validate.confirmation": "Confirmation does not match",
	},
}
